// Package storage adapts the S3 and DynamoDB clients to the two narrow store
// interfaces the handlers depend on.
package storage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sh3r4rd/document-ingest/internal/model"
)

// ObjectStore writes uploaded bytes.
type ObjectStore interface {
	PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error
}

// RecordStore upserts tracking records by primary key.
type RecordStore interface {
	PutItem(ctx context.Context, rec model.TrackingRecord) error
}

// S3API is the subset of *s3.Client used by S3Store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// DynamoDBAPI is the subset of *dynamodb.Client used by DynamoStore.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

var (
	_ ObjectStore = (*S3Store)(nil)
	_ RecordStore = (*DynamoStore)(nil)

	_ S3API       = (*s3.Client)(nil)
	_ DynamoDBAPI = (*dynamodb.Client)(nil)
)

// NewAWSConfig loads the SDK default configuration (region, credentials) from
// the environment.
func NewAWSConfig(ctx context.Context) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx)
}
