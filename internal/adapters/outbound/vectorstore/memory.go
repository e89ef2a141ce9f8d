package vectorstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/cleitonmarx/bomi/internal/common"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
)

type snapshot struct {
	examples []domain.IndexedExample
}

var emptySnapshot = &snapshot{}

// MemoryIndex is an in-memory domain.EmotionIndex. Readers load an immutable
// snapshot without locking. Writers build a new snapshot and swap it in, one
// writer at a time.
type MemoryIndex struct {
	current atomic.Pointer[snapshot]
	writeMu sync.Mutex
	file    *SnapshotFile
}

// NewMemoryIndex creates an empty index. When file is not nil every write is
// persisted to it before becoming visible.
func NewMemoryIndex(file *SnapshotFile) *MemoryIndex {
	idx := &MemoryIndex{file: file}
	idx.current.Store(emptySnapshot)
	return idx
}

// Restore replaces the contents with previously indexed examples without
// persisting them.
func (m *MemoryIndex) Restore(examples []domain.IndexedExample) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	seeds := make([]domain.SeedExample, len(examples))
	embeddings := make([]domain.Embedding, len(examples))
	for i, e := range examples {
		seeds[i] = e.SeedExample
		embeddings[i] = e.Embedding
	}
	next, err := build(nil, seeds, embeddings)
	if err != nil {
		return err
	}
	m.current.Store(next)
	return nil
}

// Add implements domain.EmotionIndex.
func (m *MemoryIndex) Add(ctx context.Context, examples []domain.SeedExample, embeddings []domain.Embedding) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	next, err := build(m.current.Load().examples, examples, embeddings)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	err = m.swap(next)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// Reset implements domain.EmotionIndex.
func (m *MemoryIndex) Reset(ctx context.Context) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	err := m.swap(emptySnapshot)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// Replace implements domain.EmotionIndex.
func (m *MemoryIndex) Replace(ctx context.Context, examples []domain.SeedExample, embeddings []domain.Embedding) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	next, err := build(nil, examples, embeddings)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	err = m.swap(next)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// Count implements domain.EmotionIndex.
func (m *MemoryIndex) Count(_ context.Context) (int, error) {
	return len(m.current.Load().examples), nil
}

// TopK implements domain.EmotionIndex.
func (m *MemoryIndex) TopK(ctx context.Context, query domain.Embedding, k int) ([]domain.ScoredExample, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	snap := m.current.Load()
	k = max(0, min(k, len(snap.examples)))
	if k == 0 {
		return []domain.ScoredExample{}, nil
	}

	scored := make([]domain.ScoredExample, len(snap.examples))
	for i, e := range snap.examples {
		scored[i] = domain.ScoredExample{
			IndexedExample: e,
			Similarity:     common.CosineOrFloor(query, e.Embedding),
		}
	}
	SortScored(scored)
	return scored[:k], nil
}

// swap must be called with writeMu held.
func (m *MemoryIndex) swap(next *snapshot) error {
	if m.file != nil {
		if err := m.file.Save(next.examples); err != nil {
			return fmt.Errorf("persist snapshot: %w", err)
		}
	}
	m.current.Store(next)
	return nil
}

// SortScored orders results by descending similarity, ties by ascending row id.
func SortScored(results []domain.ScoredExample) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].RowID < results[j].RowID
	})
}

// build appends examples to base into a new snapshot, assigning row ids from len(base).
func build(base []domain.IndexedExample, examples []domain.SeedExample, embeddings []domain.Embedding) (*snapshot, error) {
	if err := ValidateBatch(base, examples, embeddings); err != nil {
		return nil, err
	}

	next := make([]domain.IndexedExample, len(base), len(base)+len(examples))
	copy(next, base)
	for i, e := range examples {
		next = append(next, domain.IndexedExample{
			SeedExample: e,
			Embedding:   append(domain.Embedding(nil), embeddings[i]...),
			RowID:       len(base) + i,
		})
	}
	return &snapshot{examples: next}, nil
}

// ValidateBatch checks that examples can be appended to existing: matching
// lengths, valid examples, non-zero embeddings of a single dimension and no
// duplicate (text, emotion).
func ValidateBatch(existing []domain.IndexedExample, examples []domain.SeedExample, embeddings []domain.Embedding) error {
	if len(examples) != len(embeddings) {
		return domain.NewValidationErr(fmt.Sprintf("got %d examples and %d embeddings", len(examples), len(embeddings)))
	}

	dim := 0
	seen := make(map[string]struct{}, len(existing)+len(examples))
	for _, e := range existing {
		seen[e.DedupeKey()] = struct{}{}
		dim = len(e.Embedding)
	}
	for i, e := range examples {
		if err := e.Validate(); err != nil {
			return domain.NewValidationErr(fmt.Sprintf("example %d: %s", i, err.Error()))
		}
		if _, dup := seen[e.DedupeKey()]; dup {
			return domain.NewValidationErr(fmt.Sprintf("example %d: duplicate text and emotion", i))
		}
		seen[e.DedupeKey()] = struct{}{}

		v := embeddings[i]
		if common.Norm(v) == 0 {
			return domain.NewValidationErr(fmt.Sprintf("example %d: embedding has zero norm", i))
		}
		if dim == 0 {
			dim = len(v)
		} else if len(v) != dim {
			return domain.NewValidationErr(fmt.Sprintf("example %d: embedding dimension %d, expected %d", i, len(v), dim))
		}
	}
	return nil
}
