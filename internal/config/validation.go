package config

import (
	"path"
	"strings"

	"github.com/klauspost/compress/flate"

	derrors "git.home.luguber.info/inful/docxclean/internal/errors"
)

// ValidateConfig checks a configuration after defaults have been applied.
func ValidateConfig(cfg *Config) error {
	if strings.ContainsAny(cfg.OutputSuffix, `/\`) {
		return derrors.ConfigInvalid("output_suffix", "must not contain path separators")
	}

	level := cfg.Compression()
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		return derrors.ConfigInvalid("compression_level", "must be between -2 and 9")
	}

	for _, part := range cfg.CommentParts {
		if !isRelativePartName(part) {
			return derrors.ConfigInvalid("comment_parts", "entries must be relative part names: "+part)
		}
	}
	return nil
}

// isRelativePartName reports whether name stays below the main document's directory.
func isRelativePartName(name string) bool {
	if name == "" || path.IsAbs(name) {
		return false
	}
	cleaned := path.Clean(name)
	return cleaned != "." && cleaned != ".." && !strings.HasPrefix(cleaned, "../")
}
