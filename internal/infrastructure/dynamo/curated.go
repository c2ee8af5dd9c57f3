package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mysmileproject/api/internal/domain"
)

// CuratedSmileRepo provides typed DynamoDB operations for the curated_smiles
// table the scheduler draws deliveries from.
type CuratedSmileRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCuratedSmileRepo(client *dynamodb.Client, tableName string) *CuratedSmileRepo {
	return &CuratedSmileRepo{client: client, tableName: tableName}
}

func (r *CuratedSmileRepo) Put(ctx context.Context, s *domain.CuratedSmile) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal curated smile: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *CuratedSmileRepo) Get(ctx context.Context, smileID string) (*domain.CuratedSmile, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("smile_id", smileID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("curated smile not found: %w", domain.ErrNotFound)
	}
	var s domain.CuratedSmile
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListEnabled scans the catalog for enabled entries. The catalog is a few
// dozen rows at most.
func (r *CuratedSmileRepo) ListEnabled(ctx context.Context) ([]domain.CuratedSmile, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("enable = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}
	var smiles []domain.CuratedSmile
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &smiles); err != nil {
		return nil, err
	}
	return smiles, nil
}

func (r *CuratedSmileRepo) Update(ctx context.Context, smileID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("smile_id", smileID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func (r *CuratedSmileRepo) HardDelete(ctx context.Context, smileID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("smile_id", smileID),
	})
	return err
}
