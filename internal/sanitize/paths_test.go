package sanitize

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input, suffix, want string
	}{
		{filepath.Join("docs", "report.docx"), "_fixed", filepath.Join("docs", "report_fixed.docx")},
		{filepath.Join("docs", "report.v2.docx"), "_fixed", filepath.Join("docs", "report.v2_fixed.docx")},
		{filepath.Join("docs", "noext"), "_clean", filepath.Join("docs", "noext_clean")},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultOutputPath(tt.input, tt.suffix))
		})
	}
}

func TestResolvePaths(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "a.docx")

	gotIn, gotOut, err := ResolvePaths(in, "", "_fixed")
	require.NoError(t, err)
	assert.Equal(t, in, gotIn)
	assert.Equal(t, filepath.Join(dir, "a_fixed.docx"), gotOut)

	explicit := filepath.Join(dir, "out", "b.docx")
	_, gotOut, err = ResolvePaths(in, explicit, "_fixed")
	require.NoError(t, err)
	assert.Equal(t, explicit, gotOut)

	gotIn, _, err = ResolvePaths("rel.docx", "", "_fixed")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(gotIn))
}
