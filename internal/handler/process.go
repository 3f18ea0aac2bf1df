package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/sh3r4rd/document-ingest/internal/logging"
	"github.com/sh3r4rd/document-ingest/internal/model"
	"github.com/sh3r4rd/document-ingest/internal/storage"
)

// ErrMalformedRecord is returned when a notification lacks a bucket name or
// object key.
var ErrMalformedRecord = errors.New("malformed s3 event record")

// Processor records a RECEIVED tracking item for every object-created
// notification in a batch.
type Processor struct {
	store  storage.RecordStore
	logger *slog.Logger
	now    func() time.Time
}

func NewProcessor(store storage.RecordStore, logger *slog.Logger, opts ...Option) *Processor {
	o := buildOptions(opts)
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{store: store, logger: logger, now: o.now}
}

// Handle writes one tracking record per notification, in order. The first
// failure aborts the batch and is returned to the runtime; records already
// written stay written.
func (p *Processor) Handle(ctx context.Context, event events.S3Event) (model.ProcessResponse, error) {
	log := logging.FromContext(ctx, p.logger)
	log.Info("s3 event received", "records", len(event.Records))

	for i, record := range event.Records {
		rec, err := p.trackingRecord(record)
		if err != nil {
			log.Error("invalid s3 event record", "index", i, "err", err)
			return model.ProcessResponse{}, fmt.Errorf("record %d: %w", i, err)
		}

		log.Info("writing tracking record",
			"documentId", rec.DocumentID, "bucket", rec.Bucket,
			"s3Key", rec.S3Key, "status", rec.Status, "timestamp", rec.Timestamp)

		if err := p.store.PutItem(ctx, rec); err != nil {
			log.Error("tracking record write failed", "index", i, "documentId", rec.DocumentID, "err", err)
			return model.ProcessResponse{}, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return model.ProcessResponse{StatusCode: http.StatusOK}, nil
}

func (p *Processor) trackingRecord(record events.S3EventRecord) (model.TrackingRecord, error) {
	bucket := record.S3.Bucket.Name
	rawKey := record.S3.Object.Key
	if bucket == "" || rawKey == "" {
		return model.TrackingRecord{}, ErrMalformedRecord
	}

	// Notification keys are form-encoded: '+' is a space, %XX is a byte.
	key, err := url.QueryUnescape(rawKey)
	if err != nil {
		return model.TrackingRecord{}, fmt.Errorf("decode key %q: %w", rawKey, err)
	}

	return model.NewTrackingRecord(bucket, key, p.now()), nil
}
