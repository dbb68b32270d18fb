package sanitize

import (
	"path/filepath"
	"strings"
)

// DefaultOutputPath returns <dir>/<base><suffix><ext> for input.
func DefaultOutputPath(input, suffix string) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+suffix+ext)
}

// ResolvePaths makes input absolute and derives or absolutizes output.
func ResolvePaths(input, output, suffix string) (string, string, error) {
	absIn, err := filepath.Abs(input)
	if err != nil {
		return "", "", err
	}
	if output == "" {
		return absIn, DefaultOutputPath(absIn, suffix), nil
	}
	absOut, err := filepath.Abs(output)
	if err != nil {
		return "", "", err
	}
	return absIn, absOut, nil
}
