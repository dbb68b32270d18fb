package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	derrors "git.home.luguber.info/inful/docxclean/internal/errors"
	"git.home.luguber.info/inful/docxclean/internal/logfields"
)

// Unpack extracts every entry of archivePath into destDir, preserving relative
// paths, and verifies the main document part is present.
func Unpack(archivePath, destDir string) (*Package, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, derrors.InvalidArchive(archivePath, err)
	}
	defer r.Close()

	pkg := &Package{Root: destDir}
	for _, f := range r.File {
		name, err := entryName(f.Name)
		if err != nil {
			return nil, derrors.InvalidArchive(archivePath, err)
		}
		if name == "" {
			continue
		}
		if err := extractEntry(f, filepath.Join(destDir, filepath.FromSlash(name))); err != nil {
			return nil, derrors.InvalidArchive(archivePath, err)
		}
		if !f.FileInfo().IsDir() {
			pkg.Entries = append(pkg.Entries, name)
		}
	}

	pkg.MainDocument = resolveMainDocument(destDir)
	info, err := os.Stat(pkg.Path(pkg.MainDocument))
	if err != nil || info.IsDir() {
		return nil, derrors.MissingCoreFile(pkg.MainDocument).WithContext("path", archivePath)
	}

	slog.Debug("Unpacked archive",
		logfields.Path(archivePath),
		logfields.Entries(len(pkg.Entries)),
		logfields.Part(pkg.MainDocument))
	return pkg, nil
}

// entryName normalizes a zip entry name and rejects names escaping the root.
func entryName(raw string) (string, error) {
	name := strings.ReplaceAll(raw, `\`, "/")
	if path.IsAbs(name) || filepath.IsAbs(name) {
		return "", fmt.Errorf("absolute entry path %q", raw)
	}
	trailing := strings.HasSuffix(name, "/")
	name = path.Clean(name)
	if name == "." {
		return "", nil
	}
	if name == ".." || strings.HasPrefix(name, "../") {
		return "", fmt.Errorf("entry %q escapes the archive root", raw)
	}
	if trailing {
		name += "/"
	}
	return name, nil
}

func extractEntry(f *zip.File, target string) error {
	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o750)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return fmt.Errorf("extract entry %s: %w", f.Name, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	if !f.Modified.IsZero() {
		_ = os.Chtimes(target, f.Modified, f.Modified)
	}
	return nil
}
