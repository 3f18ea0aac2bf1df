package model

// UploadRequest is the JSON body sent by clients to the upload function.
type UploadRequest struct {
	Filename      string `json:"filename"`
	ContentBase64 string `json:"content_base64"`
}
