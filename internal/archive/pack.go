package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/flate"

	"git.home.luguber.info/inful/docxclean/internal/logfields"
)

// Pack writes every regular file under srcDir into a zip archive at outputPath.
// Entry names are relative to srcDir with no wrapping folder, and
// [Content_Types].xml comes first. The archive is staged next to outputPath
// and renamed over it, replacing any existing file.
func Pack(srcDir, outputPath string, level int) (err error) {
	entries, err := collectEntries(srcDir)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".docxclean-*.tmp")
	if err != nil {
		return fmt.Errorf("create staging file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	zw := zip.NewWriter(tmp)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	for _, name := range entries {
		if err = addFile(zw, srcDir, name); err != nil {
			return err
		}
	}

	if err = zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close staging file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod staging file: %w", err)
	}
	if err = os.Rename(tmpName, outputPath); err != nil {
		return fmt.Errorf("replace output: %w", err)
	}

	slog.Debug("Packed archive", logfields.Output(outputPath), logfields.Entries(len(entries)))
	return nil
}

// collectEntries lists regular files under root as slash-separated names,
// sorted, with the content-type manifest first.
func collectEntries(root string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.SliceStable(names, func(i, j int) bool {
		if names[i] == ContentTypesPart || names[j] == ContentTypesPart {
			return names[i] == ContentTypesPart && names[j] != ContentTypesPart
		}
		return names[i] < names[j]
	})
	return names, nil
}

func addFile(zw *zip.Writer, root, name string) error {
	p := filepath.Join(root, filepath.FromSlash(name))
	info, err := os.Stat(p)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}

	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	return nil
}
