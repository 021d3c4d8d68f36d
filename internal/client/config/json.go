package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/docshare/internal/flagx"
	"github.com/dmitrijs2005/docshare/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields leave the corresponding Config value untouched.
type JsonConfig struct {
	APIBase           string         `json:"api_base"`
	PageURL           string         `json:"page_url"`
	DBPath            string         `json:"db_path"`
	DownloadDir       string         `json:"download_dir"`
	ProgressInterval  timex.Duration `json:"progress_interval"`
	ProgressHideDelay timex.Duration `json:"progress_hide_delay"`
	CopyFeedback      timex.Duration `json:"copy_feedback"`
	PrintDelay        timex.Duration `json:"print_delay"`
	LogLevel          string         `json:"log_level"`
	LogFormat         string         `json:"log_format"`
	LogBackend        string         `json:"log_backend"`
}

// parseJson overlays cfg with the JSON file named by -c or -config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.APIBase, jc.APIBase)
	setString(&cfg.PageURL, jc.PageURL)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.DownloadDir, jc.DownloadDir)
	setDuration(&cfg.ProgressInterval, jc.ProgressInterval)
	setDuration(&cfg.ProgressHideDelay, jc.ProgressHideDelay)
	setDuration(&cfg.CopyFeedback, jc.CopyFeedback)
	setDuration(&cfg.PrintDelay, jc.PrintDelay)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogBackend, jc.LogBackend)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
