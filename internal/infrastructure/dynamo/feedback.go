package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/mysmileproject/api/internal/domain"
)

// FeedbackRepo provides typed DynamoDB operations for the feedback table.
// Feedback is write-only from this service.
type FeedbackRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewFeedbackRepo(client *dynamodb.Client, tableName string) *FeedbackRepo {
	return &FeedbackRepo{client: client, tableName: tableName}
}

func (r *FeedbackRepo) Put(ctx context.Context, f *domain.Feedback) error {
	item, err := attributevalue.MarshalMap(f)
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}
