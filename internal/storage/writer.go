package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"steamgrab/internal/domain"
	apperrors "steamgrab/internal/errors"
)

// Writer persists one payload per app into a fixed output directory.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Save writes the payload as indented JSON to <dir>/app_<id>.json,
// creating the directory if needed and truncating any previous file for
// the same app. The output is deterministic for a given payload.
func (w *Writer) Save(payload domain.Payload) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", apperrors.NewPersistence("failed to create output directory "+w.Dir, err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", apperrors.NewPersistence("failed to encode payload for app "+payload.AppID, err)
	}

	path := filepath.Join(w.Dir, fmt.Sprintf("app_%s.json", payload.AppID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperrors.NewPersistence("failed to write "+path, err)
	}
	return path, nil
}
