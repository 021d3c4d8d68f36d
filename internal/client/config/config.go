package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// App selects the per-app defaults.
type App string

const (
	AppUploader App = "uploader"
	AppViewer   App = "viewer"
)

// Config holds runtime settings for the uploader and viewer clients.
type Config struct {
	APIBase     string `env:"API_BASE"`
	PageURL     string `env:"PAGE_URL"`
	DBPath      string `env:"DB_PATH"`
	DownloadDir string `env:"DOWNLOAD_DIR"`

	ProgressInterval  time.Duration `env:"PROGRESS_INTERVAL"`
	ProgressHideDelay time.Duration `env:"PROGRESS_HIDE_DELAY"`
	CopyFeedback      time.Duration `env:"COPY_FEEDBACK"`
	PrintDelay        time.Duration `env:"PRINT_DELAY"`

	LogLevel   string `env:"LOG_LEVEL"`
	LogFormat  string `env:"LOG_FORMAT"`
	LogBackend string `env:"LOG_BACKEND"`
}

// LoadDefaults populates c with the defaults of app.
func (c *Config) LoadDefaults(app App) {
	c.APIBase = "http://localhost:8000"
	c.PageURL = fmt.Sprintf("http://localhost:8080/%s/", app)
	c.DBPath = "docshare.db"
	c.DownloadDir = "downloads"

	c.ProgressInterval = 200 * time.Millisecond
	c.ProgressHideDelay = 1500 * time.Millisecond
	c.CopyFeedback = 2 * time.Second
	c.PrintDelay = 500 * time.Millisecond

	c.LogLevel = "info"
	c.LogFormat = "text"
	c.LogBackend = "slog"
}

// LoadConfig constructs a Config for app from args (without the program
// name): defaults, then JSON, then environment, then flags. Later sources
// take precedence over earlier ones.
func LoadConfig(app App, args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults(app)

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ(), ".env"); err != nil {
		return nil, err
	}
	linkID, err := parseFlags(cfg, args)
	if err != nil {
		return nil, err
	}
	if linkID != "" {
		if cfg.PageURL, err = withLinkID(cfg.PageURL, linkID); err != nil {
			return nil, err
		}
	}

	if _, err := url.Parse(cfg.APIBase); err != nil {
		return nil, fmt.Errorf("invalid api base: %w", err)
	}
	return cfg, nil
}

func withLinkID(pageURL, linkID string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page url: %w", err)
	}
	q := u.Query()
	q.Set("id", linkID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func environ() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}
