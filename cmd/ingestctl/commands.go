package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/sh3r4rd/document-ingest/internal/config"
	"github.com/sh3r4rd/document-ingest/internal/handler"
	"github.com/sh3r4rd/document-ingest/internal/logging"
	"github.com/sh3r4rd/document-ingest/internal/model"
	"github.com/sh3r4rd/document-ingest/internal/storage"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ingestctl",
		Short:         "Invoke the document ingestion handlers locally",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newUploadCmd(), newProcessCmd())
	return root
}

func newUploadCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a local file to BUCKET_NAME through the upload handler",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadUpload()
			if err != nil {
				return err
			}
			awsCfg, err := storage.NewAWSConfig(cmd.Context())
			if err != nil {
				return fmt.Errorf("load aws configuration: %w", err)
			}

			event, err := uploadEventFromFile(args[0], name)
			if err != nil {
				return err
			}

			logger := logging.New("ingestctl", cmd.ErrOrStderr())
			u := handler.NewUploader(storage.NewS3Store(s3.NewFromConfig(awsCfg)), cfg.BucketName, logger)
			resp, _ := u.Handle(cmd.Context(), event)

			if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
				return err
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("upload returned status %d", resp.StatusCode)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "filename to send instead of the local file's base name")
	return cmd
}

func newProcessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process <event.json>",
		Short: "Replay an S3 notification document into TABLE_NAME through the processing handler",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadProcess()
			if err != nil {
				return err
			}
			awsCfg, err := storage.NewAWSConfig(cmd.Context())
			if err != nil {
				return fmt.Errorf("load aws configuration: %w", err)
			}

			event, err := readS3Event(args[0])
			if err != nil {
				return err
			}

			logger := logging.New("ingestctl", cmd.ErrOrStderr())
			p := handler.NewProcessor(storage.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.TableName), logger)
			resp, err := p.Handle(cmd.Context(), event)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
}

// uploadEventFromFile builds an API Gateway style event with a string body,
// the same shape the deployed function receives.
func uploadEventFromFile(path, name string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if name == "" {
		name = filepath.Base(path)
	}

	body, err := json.Marshal(model.UploadRequest{
		Filename:      name,
		ContentBase64: base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]string{"body": string(body)})
}

func readS3Event(path string) (events.S3Event, error) {
	var event events.S3Event
	data, err := os.ReadFile(path)
	if err != nil {
		return event, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &event); err != nil {
		return event, fmt.Errorf("decode s3 event %s: %w", path, err)
	}
	return event, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
