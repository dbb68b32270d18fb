package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docxclean/internal/errors"
)

// DefaultOutputSuffix is appended to the input base name when no output path is given.
const DefaultOutputSuffix = "_fixed"

// DefaultCommentParts are the auxiliary parts holding comment bodies and metadata,
// relative to the main document's directory.
var DefaultCommentParts = []string{
	"comments.xml",
	"commentsExtended.xml",
	"commentsIds.xml",
	"commentsExtensible.xml",
}

// Config represents the sanitizer configuration.
type Config struct {
	OutputSuffix     string    `yaml:"output_suffix" toml:"output_suffix"`
	WorkspaceDir     string    `yaml:"workspace_dir" toml:"workspace_dir"`
	CompressionLevel *int      `yaml:"compression_level" toml:"compression_level"`
	LogLevel         LogLevel  `yaml:"log_level" toml:"log_level"`
	LogFormat        LogFormat `yaml:"log_format" toml:"log_format"`
	MetricsTextfile  string    `yaml:"metrics_textfile" toml:"metrics_textfile"`
	CommentParts     []string  `yaml:"comment_parts" toml:"comment_parts"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load builds the effective configuration: .env files, the optional config file
// at configPath (YAML or TOML by extension), environment overrides, defaults,
// then validation. An empty configPath skips the file.
func Load(configPath string) (*Config, error) {
	// Missing .env files are normal; loadEnvFile only reports which one was used.
	_ = loadEnvFile()

	cfg := &Config{}
	if configPath != "" {
		if err := decodeFile(configPath, cfg); err != nil {
			return nil, derrors.ConfigLoadFailed(configPath, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryConfig, "invalid environment override")
	}
	applyDefaults(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeFile(configPath string, cfg *Config) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the file content
	expanded := os.ExpandEnv(string(data))

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".toml":
		if _, err := toml.Decode(expanded, cfg); err != nil {
			return fmt.Errorf("failed to decode toml config: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file extension %q (use .yaml, .yml or .toml)", filepath.Ext(configPath))
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = DefaultOutputSuffix
	}
	if cfg.CompressionLevel == nil {
		level := 9
		cfg.CompressionLevel = &level
	}
	cfg.LogLevel = NormalizeLogLevel(string(cfg.LogLevel))
	cfg.LogFormat = NormalizeLogFormat(string(cfg.LogFormat))
	if len(cfg.CommentParts) == 0 {
		cfg.CommentParts = append([]string(nil), DefaultCommentParts...)
	}
}

// Compression returns the effective deflate level.
func (c *Config) Compression() int {
	if c.CompressionLevel == nil {
		return 9
	}
	return *c.CompressionLevel
}
