package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sh3r4rd/document-ingest/internal/config"
)

func TestLoadUpload(t *testing.T) {
	t.Setenv(config.BucketName, "  docs-bucket ")
	t.Setenv(config.TableName, "")

	cfg, err := config.LoadUpload()
	require.NoError(t, err)
	assert.Equal(t, "docs-bucket", cfg.BucketName)
	assert.Empty(t, cfg.TableName)
}

func TestLoadUploadMissingBucket(t *testing.T) {
	t.Setenv(config.BucketName, "   ")
	t.Setenv(config.TableName, "tracking")

	_, err := config.LoadUpload()
	require.ErrorIs(t, err, config.ErrMissingSetting)
	assert.Contains(t, err.Error(), config.BucketName)
}

func TestLoadProcess(t *testing.T) {
	t.Setenv(config.BucketName, "")
	t.Setenv(config.TableName, "tracking")

	cfg, err := config.LoadProcess()
	require.NoError(t, err)
	assert.Equal(t, "tracking", cfg.TableName)
}

func TestLoadProcessMissingTable(t *testing.T) {
	t.Setenv(config.BucketName, "docs-bucket")
	t.Setenv(config.TableName, "")

	_, err := config.LoadProcess()
	require.ErrorIs(t, err, config.ErrMissingSetting)
	assert.Contains(t, err.Error(), config.TableName)
}
