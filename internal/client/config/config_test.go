package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults(AppViewer)

	assert.Equal(t, "http://localhost:8000", c.APIBase)
	assert.Equal(t, "http://localhost:8080/viewer/", c.PageURL)
	assert.Equal(t, 200*time.Millisecond, c.ProgressInterval)
	assert.Equal(t, 1500*time.Millisecond, c.ProgressHideDelay)
	assert.Equal(t, 2*time.Second, c.CopyFeedback)
	assert.Equal(t, 500*time.Millisecond, c.PrintDelay)
	assert.Equal(t, "slog", c.LogBackend)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"api_base": "http://json:1",
		"db_path":  "json.db",
	})
	t.Setenv("DOCSHARE_DB_PATH", "env.db")
	t.Setenv("DOCSHARE_COPY_FEEDBACK", "3s")

	cfg, err := LoadConfig(AppUploader, []string{"-c", path, "-a", "http://flag:2", "-id", "abc123"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:2", cfg.APIBase)
	assert.Equal(t, "env.db", cfg.DBPath)
	assert.Equal(t, 3*time.Second, cfg.CopyFeedback)
	assert.Equal(t, "http://localhost:8080/uploader/?id=abc123", cfg.PageURL)
}

func TestLoadConfig_MissingJSON(t *testing.T) {
	_, err := LoadConfig(AppViewer, []string{"-c", "/does/not/exist.json"})
	assert.Error(t, err)
}

func TestWithLinkID(t *testing.T) {
	got, err := withLinkID("https://h/viewer/?id=old&x=1", "new")
	require.NoError(t, err)
	assert.Equal(t, "https://h/viewer/?id=new&x=1", got)
}
