package model

import (
	"path"
	"strings"
	"time"
)

// Domain constants shared across handler, storage, and cmd packages.
const (
	UploadKeyPrefix       = "uploads/"
	UploadTimestampLayout = "20060102T150405Z"
	RecordTimestampLayout = "2006-01-02T15:04:05.000000"
	DefaultContentType    = "application/octet-stream"
)

// AllowedExtensions lists the accepted upload suffixes, in the order they are
// reported to clients.
var AllowedExtensions = []string{".pdf", ".png", ".jpg", ".jpeg"}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// AllowedExtension reports whether filename ends with an accepted extension.
// Only the suffix is checked; the content itself is never inspected.
func AllowedExtension(filename string) bool {
	name := strings.ToLower(strings.TrimSpace(filename))
	for _, ext := range AllowedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ContentTypeFor returns the MIME type stored alongside an uploaded object.
func ContentTypeFor(filename string) string {
	ext := path.Ext(strings.ToLower(strings.TrimSpace(filename)))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return DefaultContentType
}

// UploadKey builds the object key for a file uploaded at t. Two uploads of the
// same filename within one second map to the same key.
func UploadKey(filename string, t time.Time) string {
	return UploadKeyPrefix + t.UTC().Format(UploadTimestampLayout) + "-" + filename
}
