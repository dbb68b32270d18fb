package transforms

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const utf8BOM = "\uFEFF"

// PartStore gives transforms access to sibling parts of the extracted package.
type PartStore interface {
	// Remove deletes the named part; it reports false when the part did not exist.
	Remove(name string) (bool, error)
}

// Document is the main document part held as one mutable text buffer.
type Document struct {
	// Name is the part name inside the package, e.g. "word/document.xml".
	Name    string
	Content string

	// RemovedParts lists parts deleted by transforms during this run.
	RemovedParts []string

	parts PartStore
}

// NewDocument wraps content for in-memory use; parts may be nil.
func NewDocument(name, content string, parts PartStore) *Document {
	return &Document{Name: name, Content: content, parts: parts}
}

// Dir returns the directory of the part inside the package ("word" for "word/document.xml").
func (d *Document) Dir() string {
	return path.Dir(d.Name)
}

// RemovePart deletes a part relative to the package root. Without a PartStore
// it is a no-op.
func (d *Document) RemovePart(name string) (bool, error) {
	if d.parts == nil {
		return false, nil
	}
	removed, err := d.parts.Remove(name)
	if err != nil {
		return false, err
	}
	if removed {
		d.RemovedParts = append(d.RemovedParts, name)
	}
	return removed, nil
}

// DirStore is a PartStore over an extracted package directory.
type DirStore struct {
	Root string
}

// Remove implements PartStore.
func (s DirStore) Remove(name string) (bool, error) {
	p := filepath.Join(s.Root, filepath.FromSlash(name))
	err := os.Remove(p)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("remove part %s: %w", name, err)
	}
}

// ReadDocument loads the named part from an extracted package rooted at root.
// A leading byte-order mark is dropped; otherwise bytes are kept as-is.
func ReadDocument(root, name string) (*Document, error) {
	f, err := os.Open(filepath.Join(root, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	// Nop fallback leaves BOM-less input byte-identical.
	dec := unicode.BOMOverride(encoding.Nop.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return &Document{
		Name:    name,
		Content: string(data),
		parts:   DirStore{Root: root},
	}, nil
}

// Write persists the content back to its part as UTF-8 without a byte-order mark.
func (d *Document) Write(root string) error {
	p := filepath.Join(root, filepath.FromSlash(d.Name))
	mode := os.FileMode(0o644)
	if info, err := os.Stat(p); err == nil {
		mode = info.Mode().Perm()
	}

	content := strings.TrimPrefix(d.Content, utf8BOM)
	if err := os.WriteFile(p, []byte(content), mode); err != nil {
		return fmt.Errorf("write %s: %w", d.Name, err)
	}
	return nil
}
