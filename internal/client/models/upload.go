package models

import "io"

// FileHandle is a file picked for upload. Name, Size and Type are captured
// at pick time; Open is called once when the request body is written.
type FileHandle struct {
	Name string
	Size int64
	Type string
	Open func() (io.ReadCloser, error)
}

// UploadRequest carries the multipart fields of POST /upload/{linkId}.
type UploadRequest struct {
	CustomerName string
	SessionID    string
	Files        []FileHandle
}

type UploadedFile struct {
	ID       FileID `json:"id"`
	Filename string `json:"filename"`
}

// UploadResult is the success body of POST /upload/{linkId}.
type UploadResult struct {
	LinkID            string         `json:"link_id"`
	CustomerName      string         `json:"customer_name"`
	FolderName        string         `json:"folder_name"`
	FilesUploaded     int            `json:"files_uploaded"`
	Files             []UploadedFile `json:"files"`
	ExpiresAt         Timestamp      `json:"expires_at"`
	CustomerExpiresAt Timestamp      `json:"customer_expires_at"`
	SessionID         string         `json:"session_id"`
}
