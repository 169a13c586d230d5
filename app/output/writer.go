package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Writer places rendered documents in the output directory. Each write
// replaces the whole target atomically, so a subscriber fetching the file
// never observes a partially written document.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Run writes one document under <dir>/<slug>.ics and returns the path.
func (w *Writer) Run(slug, body string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.dir, slug+".ics")
	if err := renameio.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}
