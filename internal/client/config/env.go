package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "DOCSHARE_"

// parseEnv overlays cfg with DOCSHARE_* variables from environment. Values
// from the dotenv file fill in variables the environment does not set; a
// missing file is not an error.
func parseEnv(cfg *Config, environment map[string]string, dotenvPath string) error {
	merged := make(map[string]string, len(environment))
	for k, v := range environment {
		merged[k] = v
	}

	if dotenvPath != "" {
		fileVals, err := godotenv.Read(dotenvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return fmt.Errorf("read %s: %w", dotenvPath, err)
		default:
			for k, v := range fileVals {
				if _, ok := merged[k]; !ok {
					merged[k] = v
				}
			}
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      envPrefix,
		Environment: merged,
	}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
