package model

// Fixed response messages.
const (
	MsgUploadSuccessful = "Upload successful"
	MsgUploadFailed     = "Upload failed"
	MsgFieldsRequired   = "filename and content_base64 are required"
	MsgInvalidFileType  = "Invalid file type. Allowed: .pdf, .png, .jpg, .jpeg"
)

// UploadResponse is returned on a successful upload.
type UploadResponse struct {
	Message string `json:"message"`
	Bucket  string `json:"bucket"`
	Key     string `json:"key"`
}

// ErrorResponse is returned for any failed upload. Error is only set on
// server-side failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ProcessResponse is returned by the processing function once a whole batch
// has been written.
type ProcessResponse struct {
	StatusCode int `json:"statusCode"`
}
