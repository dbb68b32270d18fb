// Package manifest removes references to deleted comment parts from the
// content-type manifest and the main document's relationships part.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

var (
	// Overrides whose PartName mentions comments, self-closing or not.
	commentOverride = regexp.MustCompile(`<Override\b[^>]*\bPartName\s*=\s*"[^"]*comments[^"]*"[^>]*?(?:/>|>\s*</Override>)`)

	// Relationships whose Target mentions comments in any letter case. This also
	// catches unrelated targets that merely contain the word.
	commentRelationship = regexp.MustCompile(`(?i)<Relationship\b[^>]*\bTarget\s*=\s*"[^"]*comments[^"]*"[^>]*?(?:/>|>\s*</Relationship>)`)
)

// Result reports how many entries were removed from each manifest.
type Result struct {
	ContentTypesRemoved  int
	RelationshipsRemoved int
}

// Total returns the number of removed entries across both manifests.
func (r Result) Total() int { return r.ContentTypesRemoved + r.RelationshipsRemoved }

// Sync edits the content-type manifest and relationships part in place.
// Either path may point to a missing file, which is skipped.
func Sync(contentTypesPath, relationshipsPath string) (Result, error) {
	var res Result
	var err error

	res.ContentTypesRemoved, err = rewriteFile(contentTypesPath, commentOverride)
	if err != nil {
		return res, err
	}
	res.RelationshipsRemoved, err = rewriteFile(relationshipsPath, commentRelationship)
	if err != nil {
		return res, err
	}
	return res, nil
}

// StripContentTypes removes comment overrides from a content-type manifest.
func StripContentTypes(content string) (string, int) {
	return strip(content, commentOverride)
}

// StripRelationships removes comment relationships from a relationships part.
func StripRelationships(content string) (string, int) {
	return strip(content, commentRelationship)
}

func strip(content string, re *regexp.Regexp) (string, int) {
	n := len(re.FindAllStringIndex(content, -1))
	if n == 0 {
		return content, 0
	}
	return re.ReplaceAllString(content, ""), n
}

func rewriteFile(path string, re *regexp.Regexp) (int, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	content, n := strip(string(data), re)
	if n == 0 {
		return 0, nil
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}
