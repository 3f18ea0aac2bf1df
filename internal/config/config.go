// Package config reads the two environment settings the ingestion functions
// recognize.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	BucketName = "BUCKET_NAME"
	TableName  = "TABLE_NAME"
)

// ErrMissingSetting is returned when a required environment variable is unset
// or blank.
var ErrMissingSetting = errors.New("missing required setting")

// Config holds the runtime configuration for both functions. Each function only
// requires the field it consumes.
type Config struct {
	BucketName string
	TableName  string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	_ = v.BindEnv(BucketName)
	_ = v.BindEnv(TableName)
	return v
}

func load(required ...string) (Config, error) {
	v := newViper()
	cfg := Config{
		BucketName: strings.TrimSpace(v.GetString(BucketName)),
		TableName:  strings.TrimSpace(v.GetString(TableName)),
	}

	values := map[string]string{
		BucketName: cfg.BucketName,
		TableName:  cfg.TableName,
	}
	for _, key := range required {
		if values[key] == "" {
			return Config{}, fmt.Errorf("%w: %s", ErrMissingSetting, key)
		}
	}
	return cfg, nil
}

// LoadUpload loads configuration for the upload function. BUCKET_NAME is required.
func LoadUpload() (Config, error) {
	return load(BucketName)
}

// LoadProcess loads configuration for the processing function. TABLE_NAME is required.
func LoadProcess() (Config, error) {
	return load(TableName)
}
