package vectorstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotFile_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "index.json")
	file := NewSnapshotFile(path)

	idx := NewMemoryIndex(file)
	require.NoError(t, idx.Replace(context.Background(),
		[]domain.SeedExample{seed("오늘 정말 기분이 좋아요", "기쁨", 4), seed("너무 피곤해요", "피곤", 5)},
		[]domain.Embedding{{0.6, 0.8}, {1, 0}},
	))

	examples, found, err := file.Load()
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, examples, 2)
	assert.Equal(t, "오늘 정말 기분이 좋아요", examples[0].Text)
	assert.Equal(t, domain.EmotionLabel("기쁨"), examples[0].Emotion)
	assert.Equal(t, 4, examples[0].Intensity)
	assert.Equal(t, domain.Embedding{0.6, 0.8}, examples[0].Embedding)
	assert.Equal(t, 1, examples[1].RowID)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")

	require.NoError(t, idx.Reset(context.Background()))
	examples, found, err = file.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, examples)
}

func TestSnapshotFile_Load(t *testing.T) {
	tests := map[string]struct {
		content   *string
		expectErr bool
		found     bool
	}{
		"missing-file": {
			content: nil,
		},
		"corrupt-json": {
			content:   ptr(`{"version":1,"examples":[`),
			expectErr: true,
		},
		"unknown-version": {
			content:   ptr(`{"version":7,"examples":[]}`),
			expectErr: true,
		},
		"row-id-gap": {
			content:   ptr(`{"version":1,"examples":[{"row_id":1,"text":"a","emotion":"기쁨","intensity":1,"embedding":[1]}]}`),
			expectErr: true,
		},
		"valid": {
			content: ptr(`{"version":1,"examples":[{"row_id":0,"text":"a","emotion":"기쁨","intensity":1,"embedding":[1]}]}`),
			found:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600))
			}

			_, found, err := NewSnapshotFile(path).Load()
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestMemoryIndex_PersistFailureKeepsPreviousSet(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	idx := NewMemoryIndex(NewSnapshotFile(filepath.Join(blocker, "index.json")))
	err := idx.Add(context.Background(), []domain.SeedExample{seed("a", "기쁨", 1)}, []domain.Embedding{{1}})
	require.Error(t, err)

	count, _ := idx.Count(context.Background())
	assert.Equal(t, 0, count)
}

func ptr(s string) *string { return &s }
