package handler_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/sh3r4rd/document-ingest/internal/model"
)

type putCall struct {
	Bucket      string
	Key         string
	Body        []byte
	ContentType string
}

type fakeObjectStore struct {
	calls []putCall
	err   error
}

func (f *fakeObjectStore) PutObject(_ context.Context, bucket, key string, body []byte, contentType string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, putCall{Bucket: bucket, Key: key, Body: body, ContentType: contentType})
	return nil
}

// fakeRecordStore mimics an unconditional put keyed by documentId.
type fakeRecordStore struct {
	mu     sync.Mutex
	items  map[string]model.TrackingRecord
	writes int
	failOn string
	err    error
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{items: make(map[string]model.TrackingRecord)}
}

func (f *fakeRecordStore) PutItem(_ context.Context, rec model.TrackingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil && (f.failOn == "" || f.failOn == rec.DocumentID) {
		return f.err
	}
	f.items[rec.DocumentID] = rec
	f.writes++
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
