package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/sh3r4rd/document-ingest/internal/logging"
	"github.com/sh3r4rd/document-ingest/internal/model"
	"github.com/sh3r4rd/document-ingest/internal/storage"
)

// Uploader validates an upload request and writes the decoded file to the
// object store.
type Uploader struct {
	store  storage.ObjectStore
	bucket string
	logger *slog.Logger
	now    func() time.Time
}

func NewUploader(store storage.ObjectStore, bucket string, logger *slog.Logger, opts ...Option) *Uploader {
	o := buildOptions(opts)
	if logger == nil {
		logger = slog.Default()
	}
	return &Uploader{store: store, bucket: bucket, logger: logger, now: o.now}
}

// uploadEvent is the part of the invocation payload the uploader reads. Body
// is either a JSON object or a string holding one.
type uploadEvent struct {
	Body json.RawMessage `json:"body"`
}

// Handle processes a single upload invocation. It always returns a structured
// response and a nil error; every failure becomes a 4xx or 5xx body.
func (u *Uploader) Handle(ctx context.Context, event json.RawMessage) (resp events.APIGatewayProxyResponse, err error) {
	log := logging.FromContext(ctx, u.logger)

	defer func() {
		if r := recover(); r != nil {
			resp = u.fail(log, fmt.Errorf("panic: %v", r))
			err = nil
		}
	}()

	req, err := decodeUploadRequest(event)
	if err != nil {
		return u.fail(log, err), nil
	}

	if req.Filename == "" || req.ContentBase64 == "" {
		log.Warn("upload rejected: missing fields",
			"has_filename", req.Filename != "", "has_content", req.ContentBase64 != "")
		return jsonResponse(http.StatusBadRequest, model.ErrorResponse{Message: model.MsgFieldsRequired}), nil
	}

	if !model.AllowedExtension(req.Filename) {
		log.Warn("upload rejected: invalid file type", "filename", req.Filename)
		return jsonResponse(http.StatusBadRequest, model.ErrorResponse{Message: model.MsgInvalidFileType}), nil
	}

	data, err := base64.StdEncoding.DecodeString(req.ContentBase64)
	if err != nil {
		return u.fail(log, fmt.Errorf("decode content_base64: %w", err)), nil
	}

	key := model.UploadKey(req.Filename, u.now())
	if err := u.store.PutObject(ctx, u.bucket, key, data, model.ContentTypeFor(req.Filename)); err != nil {
		return u.fail(log, err), nil
	}

	log.Info("upload stored", "bucket", u.bucket, "key", key, "bytes", len(data))
	return jsonResponse(http.StatusOK, model.UploadResponse{
		Message: model.MsgUploadSuccessful,
		Bucket:  u.bucket,
		Key:     key,
	}), nil
}

func (u *Uploader) fail(log *slog.Logger, err error) events.APIGatewayProxyResponse {
	log.Error("upload failed", "err", err)
	return jsonResponse(http.StatusInternalServerError, model.ErrorResponse{
		Message: model.MsgUploadFailed,
		Error:   err.Error(),
	})
}

func decodeUploadRequest(event json.RawMessage) (model.UploadRequest, error) {
	var req model.UploadRequest

	var ev uploadEvent
	if err := json.Unmarshal(event, &ev); err != nil {
		return req, fmt.Errorf("decode event: %w", err)
	}

	body := bytes.TrimSpace(ev.Body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return req, nil
	}

	if body[0] == '"' {
		var s string
		if err := json.Unmarshal(body, &s); err != nil {
			return req, fmt.Errorf("decode body: %w", err)
		}
		body = bytes.TrimSpace([]byte(s))
		if len(body) == 0 {
			return req, nil
		}
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("decode body: %w", err)
	}
	return req, nil
}

func jsonResponse(status int, payload any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"message":"` + model.MsgUploadFailed + `"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
