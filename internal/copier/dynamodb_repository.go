package copier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoPutAPI is the subset of the DynamoDB client used for writes.
type DynamoPutAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// dynamoItem is the table layout, keyed by id.
type dynamoItem struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Timestamp int64   `dynamodbav:"timestamp"`
	SizeMB    float64 `dynamodbav:"size_mb"`
	Found     bool    `dynamodbav:"found"`
}

// DynamoRepository appends records to a DynamoDB table.
type DynamoRepository struct {
	client DynamoPutAPI
	table  string
}

// NewDynamoRepository builds a record store for table.
func NewDynamoRepository(client DynamoPutAPI, table string) *DynamoRepository {
	return &DynamoRepository{client: client, table: table}
}

// Put writes rec. An existing item with the same id is never overwritten.
func (r *DynamoRepository) Put(ctx context.Context, rec Record) error {
	item, err := attributevalue.MarshalMap(dynamoItem{
		ID:        rec.ID.String(),
		Name:      rec.Name,
		Timestamp: rec.Timestamp,
		SizeMB:    rec.SizeMB,
		Found:     rec.Found,
	})
	if err != nil {
		return fmt.Errorf("marshal file metadata: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return fmt.Errorf("put file metadata: %w", err)
	}
	return nil
}
