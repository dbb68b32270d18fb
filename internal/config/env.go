package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables overriding file settings.
const (
	EnvOutputSuffix     = "DOCXCLEAN_OUTPUT_SUFFIX"
	EnvWorkspaceDir     = "DOCXCLEAN_WORKSPACE_DIR"
	EnvLogLevel         = "DOCXCLEAN_LOG_LEVEL"
	EnvLogFormat        = "DOCXCLEAN_LOG_FORMAT"
	EnvCompressionLevel = "DOCXCLEAN_COMPRESSION_LEVEL"
	EnvMetricsTextfile  = "DOCXCLEAN_METRICS_TEXTFILE"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first of .env/.env.local that exists.
// Existing process environment variables are not overwritten.
func loadEnvFile() error {
	for _, envPath := range envFiles {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("load %s: %w", envPath, err)
		}
		return nil
	}
	return fmt.Errorf("no .env file found")
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvOutputSuffix); v != "" {
		cfg.OutputSuffix = v
	}
	if v := os.Getenv(EnvWorkspaceDir); v != "" {
		cfg.WorkspaceDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = LogLevel(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = LogFormat(v)
	}
	if v := os.Getenv(EnvMetricsTextfile); v != "" {
		cfg.MetricsTextfile = v
	}
	if v := os.Getenv(EnvCompressionLevel); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCompressionLevel, err)
		}
		cfg.CompressionLevel = &level
	}
	return nil
}
