package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FileID identifies a file within a link's manifest. The API may encode it
// as a JSON string or number; both decode to the same textual form.
type FileID string

func (id *FileID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FileID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("file id: %w", err)
	}
	*id = FileID(n.String())
	return nil
}

// FileRecord is one uploaded file as listed by the API. Records are
// read-only on the client; ID is the identity key.
type FileRecord struct {
	ID                FileID    `json:"id"`
	Filename          string    `json:"filename"`
	Mimetype          string    `json:"mimetype"`
	Size              int64     `json:"size"`
	UploadedAt        Timestamp `json:"uploaded_at"`
	DownloadURL       string    `json:"download_url"`
	CustomerExpiresAt Timestamp `json:"customer_expires_at"`
}
