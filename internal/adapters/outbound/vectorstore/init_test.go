package vectorstore

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitEmotionIndex_Initialize(t *testing.T) {
	validSnapshot := `{"version":1,"examples":[` +
		`{"row_id":0,"text":"a","emotion":"기쁨","intensity":1,"embedding":[1,0]},` +
		`{"row_id":1,"text":"b","emotion":"슬픔","intensity":2,"embedding":[0,1]}]}`

	tests := map[string]struct {
		backend       string
		snapshot      *string
		noPath        bool
		expectIndex   bool
		expectedCount int
		expectedLog   string
	}{
		"memory-without-snapshot-path": {
			backend:     BackendMemory,
			noPath:      true,
			expectIndex: true,
		},
		"memory-missing-snapshot": {
			backend:     BackendMemory,
			expectIndex: true,
		},
		"memory-restores-snapshot": {
			backend:       BackendMemory,
			snapshot:      ptr(validSnapshot),
			expectIndex:   true,
			expectedCount: 2,
			expectedLog:   "restored 2 examples",
		},
		"memory-ignores-corrupt-snapshot": {
			backend:     BackendMemory,
			snapshot:    ptr("not json"),
			expectIndex: true,
			expectedLog: "ignoring snapshot",
		},
		"memory-ignores-invalid-examples": {
			backend:     BackendMemory,
			snapshot:    ptr(`{"version":1,"examples":[{"row_id":0,"text":"a","emotion":"기쁨","intensity":1,"embedding":[0,0]}]}`),
			expectIndex: true,
			expectedLog: "ignoring snapshot",
		},
		"other-backend-registers-nothing": {
			backend: "postgres",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)

			var buf bytes.Buffer
			path := filepath.Join(t.TempDir(), "index.json")
			if tt.snapshot != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.snapshot), 0o600))
			}
			if tt.noPath {
				path = "-"
			}

			i := InitEmotionIndex{
				Logger:       log.New(&buf, "", 0),
				Backend:      tt.backend,
				SnapshotPath: path,
			}
			_, err := i.Initialize(context.Background())
			require.NoError(t, err)

			idx, err := depend.Resolve[domain.EmotionIndex]()
			if !tt.expectIndex {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			count, err := idx.Count(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
			if tt.expectedLog != "" {
				assert.Contains(t, buf.String(), tt.expectedLog)
			}
		})
	}
}
