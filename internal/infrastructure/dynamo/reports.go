package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/mysmileproject/api/internal/domain"
)

// ReportRepo provides typed DynamoDB operations for the content_reports
// table. Reports are write-only from this service.
type ReportRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewReportRepo(client *dynamodb.Client, tableName string) *ReportRepo {
	return &ReportRepo{client: client, tableName: tableName}
}

func (r *ReportRepo) Put(ctx context.Context, report *domain.ContentReport) error {
	item, err := attributevalue.MarshalMap(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}
