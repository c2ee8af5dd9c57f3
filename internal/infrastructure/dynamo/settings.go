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

// SettingsRepo provides typed DynamoDB operations for the user_settings
// table. The table is keyed by user id, so "my settings" is a single GetItem.
type SettingsRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSettingsRepo(client *dynamodb.Client, tableName string) *SettingsRepo {
	return &SettingsRepo{client: client, tableName: tableName}
}

func (r *SettingsRepo) Put(ctx context.Context, s *domain.UserSettings) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *SettingsRepo) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("user_id", userID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("settings not found: %w", domain.ErrNotFound)
	}
	var s domain.UserSettings
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepo) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("user_id", userID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

// StampLastSent records when the scheduler last emitted a notification for
// the user. The stamp is written for observability but never read back to
// gate sends.
func (r *SettingsRepo) StampLastSent(ctx context.Context, userID string, at time.Time) error {
	return r.Update(ctx, userID, map[string]interface{}{
		fieldLastNotificationSent: at.UTC().Format(time.RFC3339),
	})
}

// ScanEnabled returns every settings record with notifications enabled. The
// scheduler walks the full set each tick; the table holds one small row per
// user, so a filtered scan is acceptable here.
func (r *SettingsRepo) ScanEnabled(ctx context.Context) ([]domain.UserSettings, error) {
	var all []domain.UserSettings
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("notifications_enabled = :t"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":t": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []domain.UserSettings
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		all = append(all, page...)
		if out.LastEvaluatedKey == nil {
			return all, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
