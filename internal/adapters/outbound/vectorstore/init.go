package vectorstore

import (
	"context"
	"log"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// BackendMemory selects the in-memory index.
const BackendMemory = "memory"

// InitEmotionIndex registers a MemoryIndex as the domain.EmotionIndex when
// the memory backend is selected.
type InitEmotionIndex struct {
	Logger       *log.Logger `resolve:""`
	Backend      string      `config:"EMOTION_INDEX_BACKEND" default:"memory"`
	SnapshotPath string      `config:"EMOTION_INDEX_SNAPSHOT_PATH" default:"-"`
}

// Initialize creates the index and restores the snapshot if one exists.
// A snapshot that cannot be read is logged and ignored.
func (i InitEmotionIndex) Initialize(ctx context.Context) (context.Context, error) {
	if i.Backend != BackendMemory {
		return ctx, nil
	}

	var file *SnapshotFile
	if i.SnapshotPath != "" && i.SnapshotPath != "-" {
		file = NewSnapshotFile(i.SnapshotPath)
	}
	idx := NewMemoryIndex(file)

	if file != nil {
		examples, found, err := file.Load()
		switch {
		case err != nil:
			i.Logger.Printf("InitEmotionIndex: ignoring snapshot %s: %v", file.Path(), err)
		case found:
			if err := idx.Restore(examples); err != nil {
				i.Logger.Printf("InitEmotionIndex: ignoring snapshot %s: %v", file.Path(), err)
			} else {
				i.Logger.Printf("InitEmotionIndex: restored %d examples from %s", len(examples), file.Path())
			}
		}
	}

	depend.Register[domain.EmotionIndex](idx)
	return ctx, nil
}
