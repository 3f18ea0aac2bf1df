// Command upload is the Lambda function that accepts base64 file uploads and
// stores them in S3.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sh3r4rd/document-ingest/internal/config"
	"github.com/sh3r4rd/document-ingest/internal/handler"
	"github.com/sh3r4rd/document-ingest/internal/logging"
	"github.com/sh3r4rd/document-ingest/internal/storage"
)

func main() {
	logger := logging.New("upload", os.Stdout)

	cfg, err := config.LoadUpload()
	if err != nil {
		logger.Error("load configuration", "err", err)
		os.Exit(1)
	}

	awsCfg, err := storage.NewAWSConfig(context.Background())
	if err != nil {
		logger.Error("load aws configuration", "err", err)
		os.Exit(1)
	}

	store := storage.NewS3Store(s3.NewFromConfig(awsCfg))
	lambda.Start(handler.NewUploader(store, cfg.BucketName, logger).Handle)
}
