package vectorstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cleitonmarx/bomi/internal/domain"
)

const snapshotVersion = 1

type snapshotDocument struct {
	Version  int              `json:"version"`
	Examples []snapshotRecord `json:"examples"`
}

type snapshotRecord struct {
	RowID     int       `json:"row_id"`
	Text      string    `json:"text"`
	Emotion   string    `json:"emotion"`
	Intensity int       `json:"intensity"`
	Embedding []float64 `json:"embedding"`
}

// SnapshotFile persists index contents as a JSON document.
type SnapshotFile struct {
	path string
}

// NewSnapshotFile creates a SnapshotFile at path.
func NewSnapshotFile(path string) *SnapshotFile {
	return &SnapshotFile{path: path}
}

// Path returns the location of the snapshot.
func (f *SnapshotFile) Path() string {
	return f.path
}

// Save writes examples to a temporary file next to the snapshot and renames
// it into place.
func (f *SnapshotFile) Save(examples []domain.IndexedExample) error {
	doc := snapshotDocument{
		Version:  snapshotVersion,
		Examples: make([]snapshotRecord, len(examples)),
	}
	for i, e := range examples {
		doc.Examples[i] = snapshotRecord{
			RowID:     e.RowID,
			Text:      e.Text,
			Emotion:   string(e.Emotion),
			Intensity: e.Intensity,
			Embedding: e.Embedding,
		}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot. A missing file yields no examples and no error.
func (f *SnapshotFile) Load() ([]domain.IndexedExample, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot: %w", err)
	}

	var doc snapshotDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.Version != snapshotVersion {
		return nil, false, fmt.Errorf("unsupported snapshot version %d", doc.Version)
	}

	examples := make([]domain.IndexedExample, len(doc.Examples))
	for i, r := range doc.Examples {
		if r.RowID != i {
			return nil, false, fmt.Errorf("snapshot row %d has row id %d", i, r.RowID)
		}
		examples[i] = domain.IndexedExample{
			SeedExample: domain.SeedExample{
				Text:      r.Text,
				Emotion:   domain.EmotionLabel(r.Emotion),
				Intensity: r.Intensity,
			},
			Embedding: r.Embedding,
			RowID:     r.RowID,
		}
	}
	return examples, true, nil
}
