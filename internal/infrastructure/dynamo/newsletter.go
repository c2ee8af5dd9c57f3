package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/mysmileproject/api/internal/domain"
)

// NewsletterRepo holds pending newsletter confirmation tokens. Rows expire
// automatically through the table's TTL on expires_at.
type NewsletterRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewNewsletterRepo(client *dynamodb.Client, tableName string) *NewsletterRepo {
	return &NewsletterRepo{client: client, tableName: tableName}
}

func (r *NewsletterRepo) Put(ctx context.Context, c *domain.NewsletterConfirmation) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal confirmation: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *NewsletterRepo) Get(ctx context.Context, userID string) (*domain.NewsletterConfirmation, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("user_id", userID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("confirmation not found: %w", domain.ErrNotFound)
	}
	var c domain.NewsletterConfirmation
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *NewsletterRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("user_id", userID),
	})
	return err
}
