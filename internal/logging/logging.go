// Package logging builds the JSON loggers used by the Lambda functions.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// New returns a JSON logger tagged with service. A nil writer means stdout,
// which Lambda forwards to CloudWatch.
func New(service string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h).With("service", service)
}

// FromContext adds the invocation's request ID to base when ctx carries
// Lambda context.
func FromContext(ctx context.Context, base *slog.Logger) *slog.Logger {
	if base == nil {
		base = slog.Default()
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return base.With("aws_request_id", lc.AwsRequestID)
	}
	return base
}
