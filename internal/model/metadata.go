package model

import "time"

// TrackingRecord represents a single item in the document tracking table.
type TrackingRecord struct {
	DocumentID string `dynamodbav:"documentId" json:"documentId"`
	Bucket     string `dynamodbav:"bucket" json:"bucket"`
	S3Key      string `dynamodbav:"s3Key" json:"s3Key"`
	Status     string `dynamodbav:"status" json:"status"`
	Timestamp  string `dynamodbav:"timestamp" json:"timestamp"`
}

// StatusReceived is the only status this pipeline writes.
const StatusReceived = "RECEIVED"

// DocumentID returns the tracking table primary key for an object.
func DocumentID(bucket, key string) string {
	return bucket + "/" + key
}

// NewTrackingRecord builds a RECEIVED record for an already-decoded key,
// stamped with t in UTC.
func NewTrackingRecord(bucket, key string, t time.Time) TrackingRecord {
	return TrackingRecord{
		DocumentID: DocumentID(bucket, key),
		Bucket:     bucket,
		S3Key:      key,
		Status:     StatusReceived,
		Timestamp:  t.UTC().Format(RecordTimestampLayout),
	}
}
