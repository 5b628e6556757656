package release

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// zipEntry maps one file on disk to its flattened name inside the archive.
type zipEntry struct {
	Name   string
	Source string
}

// writeZip produces the archive at path with the given entries, in order.
// Entry names carry no directory components, so the archive is flat. On any
// failure the partial output file is removed before returning.
func writeZip(path string, entries []zipEntry, progress bool) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return ErrArchive(path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.Default(int64(len(entries)), "archiving")
	}

	zw := zip.NewWriter(out)
	for _, e := range entries {
		if werr := addEntry(zw, e); werr != nil {
			_ = zw.Close()
			_ = out.Close()
			return ErrArchive(path, werr)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if cerr := zw.Close(); cerr != nil {
		_ = out.Close()
		return ErrArchive(path, cerr)
	}
	if cerr := out.Close(); cerr != nil {
		return ErrArchive(path, cerr)
	}
	return nil
}

func addEntry(zw *zip.Writer, e zipEntry) error {
	in, err := os.Open(e.Source)
	if err != nil {
		return fmt.Errorf("add %s: %w", e.Name, err)
	}
	defer in.Close()
	w, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("add %s: %w", e.Name, err)
	}
	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("add %s: %w", e.Name, err)
	}
	return nil
}
