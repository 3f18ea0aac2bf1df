package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sh3r4rd/document-ingest/internal/config"
	"github.com/sh3r4rd/document-ingest/internal/model"
)

func TestUploadEventFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG"), 0o600))

	raw, err := uploadEventFromFile(path, "")
	require.NoError(t, err)

	var event struct {
		Body string `json:"body"`
	}
	require.NoError(t, json.Unmarshal(raw, &event))

	var req model.UploadRequest
	require.NoError(t, json.Unmarshal([]byte(event.Body), &req))
	assert.Equal(t, "scan.png", req.Filename)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("\x89PNG")), req.ContentBase64)
}

func TestUploadEventFromFileNameOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	raw, err := uploadEventFromFile(path, "invoice.pdf")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `invoice.pdf`)
}

func TestReadS3Event(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	doc := `{"Records":[{"s3":{"bucket":{"name":"my-bucket"},"object":{"key":"a+b%20c.pdf"}}}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	event, err := readS3Event(path)
	require.NoError(t, err)
	require.Len(t, event.Records, 1)
	assert.Equal(t, "my-bucket", event.Records[0].S3.Bucket.Name)
	assert.Equal(t, "a+b%20c.pdf", event.Records[0].S3.Object.Key)
}

func TestReadS3EventInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := readS3Event(path)
	assert.Error(t, err)
}

func TestUploadCommandRequiresBucket(t *testing.T) {
	t.Setenv(config.BucketName, "")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"upload", "missing.pdf"})

	err := root.Execute()
	require.ErrorIs(t, err, config.ErrMissingSetting)
}

func TestProcessCommandRequiresTable(t *testing.T) {
	t.Setenv(config.TableName, "")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"process", "event.json"})

	err := root.Execute()
	require.ErrorIs(t, err, config.ErrMissingSetting)
}
