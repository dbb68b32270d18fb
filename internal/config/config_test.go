package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docxclean/internal/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_NoFileAppliesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputSuffix, cfg.OutputSuffix)
	assert.Equal(t, 9, cfg.Compression())
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.Equal(t, DefaultCommentParts, cfg.CommentParts)
}

func TestLoad_YAML(t *testing.T) {
	t.Setenv("DOCXCLEAN_TEST_DIR", "/var/tmp/docx")
	p := writeConfig(t, "docxclean.yaml", `
output_suffix: _clean
workspace_dir: ${DOCXCLEAN_TEST_DIR}
compression_level: 6
log_level: DEBUG
log_format: json
`)

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "_clean", cfg.OutputSuffix)
	assert.Equal(t, "/var/tmp/docx", cfg.WorkspaceDir)
	assert.Equal(t, 6, cfg.Compression())
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
}

func TestLoad_TOML(t *testing.T) {
	p := writeConfig(t, "docxclean.toml", `
output_suffix = "_toml"
compression_level = 0
comment_parts = ["comments.xml"]
`)

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "_toml", cfg.OutputSuffix)
	assert.Equal(t, 0, cfg.Compression(), "explicit zero must not be replaced by the default")
	assert.Equal(t, []string{"comments.xml"}, cfg.CommentParts)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeConfig(t, "docxclean.yml", "output_suffix: _file\n")
	t.Setenv(EnvOutputSuffix, "_env")
	t.Setenv(EnvCompressionLevel, "1")

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "_env", cfg.OutputSuffix)
	assert.Equal(t, 1, cfg.Compression())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   func(t *testing.T) string
		env    map[string]string
		substr string
	}{
		{
			name:   "missing file",
			path:   func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			substr: "failed to load configuration",
		},
		{
			name:   "unsupported extension",
			path:   func(t *testing.T) string { return writeConfig(t, "cfg.json", "{}") },
			substr: "failed to load configuration",
		},
		{
			name:   "compression out of range",
			path:   func(t *testing.T) string { return writeConfig(t, "cfg.yaml", "compression_level: 12\n") },
			substr: "invalid configuration",
		},
		{
			name:   "suffix with separator",
			path:   func(t *testing.T) string { return writeConfig(t, "cfg.yaml", "output_suffix: a/b\n") },
			substr: "invalid configuration",
		},
		{
			name:   "escaping comment part",
			path:   func(t *testing.T) string { return writeConfig(t, "cfg.yaml", "comment_parts: [\"../x.xml\"]\n") },
			substr: "invalid configuration",
		},
		{
			name:   "comment part escaping after cleaning",
			path:   func(t *testing.T) string { return writeConfig(t, "cfg.yaml", "comment_parts: [\"sub/../../x.xml\"]\n") },
			substr: "invalid configuration",
		},
		{
			name:   "bad env compression",
			path:   func(t *testing.T) string { return "" },
			env:    map[string]string{EnvCompressionLevel: "max"},
			substr: "invalid environment override",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.substr)
			assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
		})
	}
}

func TestNormalizeLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel(" Warning "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("chatty"))
	assert.Equal(t, LogLevelError, NormalizeLogLevel("error"))
}

func TestLoad_CommentPartNamesWithDots(t *testing.T) {
	p := writeConfig(t, "cfg.yaml", "comment_parts: [\"comments..xml\", \"sub/../commentsIds.xml\"]\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"comments..xml", "sub/../commentsIds.xml"}, cfg.CommentParts)
}

func TestIsRelativePartName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"comments.xml", true},
		{"comments..xml", true},
		{"a/../b.xml", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../comments.xml", false},
		{"a/../../comments.xml", false},
		{"/word/comments.xml", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRelativePartName(tt.name))
		})
	}
}
