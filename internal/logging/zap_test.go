package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_ZapJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Backend: BackendZap, Format: FormatJSON, Level: "debug"})

	log.With("link_id", "abc123").Error(context.Background(), "download failed", "file_id", "f1")

	out := buf.String()
	assert.Contains(t, out, `"msg":"download failed"`)
	assert.Contains(t, out, `"link_id":"abc123"`)
	assert.Contains(t, out, `"file_id":"f1"`)
	assert.Contains(t, out, `"level":"error"`)
}

func TestNew_ZapRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Backend: "ZAP", Format: FormatJSON, Level: "error"})

	log.Info(context.Background(), "quiet")
	log.Warn(context.Background(), "quiet too")

	assert.Empty(t, buf.String())
}
