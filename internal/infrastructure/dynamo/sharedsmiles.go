package dynamo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mysmileproject/api/internal/domain"
)

// SharedSmileRepo provides typed DynamoDB operations for the shared_smiles table.
type SharedSmileRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSharedSmileRepo(client *dynamodb.Client, tableName string) *SharedSmileRepo {
	return &SharedSmileRepo{client: client, tableName: tableName}
}

func (r *SharedSmileRepo) Put(ctx context.Context, s *domain.SharedSmile) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal shared smile: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *SharedSmileRepo) Get(ctx context.Context, smileID string) (*domain.SharedSmile, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("smile_id", smileID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("shared smile not found: %w", domain.ErrNotFound)
	}
	var s domain.SharedSmile
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListRecent returns the newest shared smiles across all users, descending by
// created_date, truncated to limit.
func (r *SharedSmileRepo) ListRecent(ctx context.Context, limit int) ([]domain.SharedSmile, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	var smiles []domain.SharedSmile
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &smiles); err != nil {
		return nil, err
	}
	sort.Slice(smiles, func(i, j int) bool {
		return smiles[i].CreatedDate.After(smiles[j].CreatedDate)
	})
	if limit > 0 && len(smiles) > limit {
		smiles = smiles[:limit]
	}
	return smiles, nil
}

// ListByOwner queries the created_by GSI, newest first.
func (r *SharedSmileRepo) ListByOwner(ctx context.Context, email string, limit int) ([]domain.SharedSmile, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("created_by-created_date-index"),
		KeyConditionExpression: aws.String("created_by = :e"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":e": &types.AttributeValueMemberS{Value: email},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}
	out, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, err
	}
	var smiles []domain.SharedSmile
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &smiles); err != nil {
		return nil, err
	}
	return smiles, nil
}

// Flag marks a smile for moderation review. Review itself happens through an
// admin tool writing admin_reviewed; this app only raises the flag.
func (r *SharedSmileRepo) Flag(ctx context.Context, smileID string, at time.Time) error {
	ue, err := buildUpdateExpr(map[string]interface{}{
		fieldIsFlagged: true,
		fieldFlaggedAt: at.UTC().Format(time.RFC3339),
	})
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
