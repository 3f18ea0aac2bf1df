// Command process is the Lambda function triggered by S3 object-created
// notifications. It records each new object in the tracking table.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/sh3r4rd/document-ingest/internal/config"
	"github.com/sh3r4rd/document-ingest/internal/handler"
	"github.com/sh3r4rd/document-ingest/internal/logging"
	"github.com/sh3r4rd/document-ingest/internal/storage"
)

func main() {
	logger := logging.New("process", os.Stdout)

	cfg, err := config.LoadProcess()
	if err != nil {
		logger.Error("load configuration", "err", err)
		os.Exit(1)
	}

	awsCfg, err := storage.NewAWSConfig(context.Background())
	if err != nil {
		logger.Error("load aws configuration", "err", err)
		os.Exit(1)
	}

	store := storage.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.TableName)
	lambda.Start(handler.NewProcessor(store, logger).Handle)
}
