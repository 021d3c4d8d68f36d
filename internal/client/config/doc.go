// Package config loads runtime configuration for the docshare clients.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults), which differ per app.
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment: variables prefixed DOCSHARE_, plus a .env file in the
//     working directory for those not already set (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the docshare API
//	-u string   page URL the app starts on
//	-id string  link ID, shorthand for ?id= on the page URL
//	-d string   path of the local SQLite database
//	-o string   directory downloads are saved to
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "200ms" or
// integer nanoseconds:
//
//	{
//	  "api_base": "http://localhost:8000",
//	  "page_url": "http://localhost:8080/uploader/",
//	  "db_path": "docshare.db",
//	  "download_dir": "downloads",
//	  "progress_interval": "200ms",
//	  "progress_hide_delay": "1.5s",
//	  "copy_feedback": "2s",
//	  "print_delay": "500ms",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "log_backend": "slog"
//	}
package config
