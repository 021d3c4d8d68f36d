package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileIcon(t *testing.T) {
	tests := []struct {
		mime string
		want Icon
	}{
		{"", IconBlank},
		{"application/pdf", IconPDF},
		{"application/vnd...pdf-mixed", IconPDF},
		{"image/png", IconImage},
		{"application/msword", IconWord},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", IconWord},
		{"application/vnd.ms-excel", IconExcel},
		{"application/vnd.oasis.opendocument.spreadsheet", IconWord},
		{"application/x-spreadsheet", IconExcel},
		{"application/vnd.ms-powerpoint", IconPPT},
		{"application/x-presentation", IconPPT},
		{"text/plain", IconText},
		{"application/zip", IconZip},
		{"application/x-compressed", IconZip},
		{"application/octet-stream", IconGeneric},
		{"Application/PDF", IconGeneric},
		{"image/pdf-preview", IconPDF},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, FileIcon(tt.mime))
		})
	}
}

func TestIcon_Glyph(t *testing.T) {
	assert.Equal(t, "[PDF]", IconPDF.Glyph())
	assert.Equal(t, "[ ]", IconBlank.Glyph())
	assert.Equal(t, "[FILE]", Icon("bi-unknown").Glyph())
}
