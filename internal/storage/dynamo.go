package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/sh3r4rd/document-ingest/internal/model"
)

// DynamoStore is a RecordStore backed by a DynamoDB table keyed on documentId.
type DynamoStore struct {
	client DynamoDBAPI
	table  string
}

func NewDynamoStore(client DynamoDBAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

// PutItem overwrites the record with the same documentId. No condition
// expression is sent; the last write wins.
func (d *DynamoStore) PutItem(ctx context.Context, rec model.TrackingRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal tracking record %s: %w", rec.DocumentID, err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put item %s in %s: %w", rec.DocumentID, d.table, err)
	}
	return nil
}
