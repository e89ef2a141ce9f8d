package workers

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"github.com/cleitonmarx/bomi/internal/usecases"
)

// IndexBootstrapper builds the emotion index once at startup when enabled.
// A failed attempt is logged and the process keeps serving.
type IndexBootstrapper struct {
	Bootstrap usecases.BootstrapEmotionIndex `resolve:""`
	Logger    *log.Logger                    `resolve:""`
	Enabled   bool                           `config:"BOOTSTRAP_ON_START" default:"false"`
	attempted atomic.Bool
}

// Run performs the startup bootstrap and then waits for ctx to be cancelled.
func (b *IndexBootstrapper) Run(ctx context.Context) error {
	if b.Enabled {
		b.Logger.Println("IndexBootstrapper: bootstrapping emotion index...")
		result, err := b.Bootstrap.Execute(ctx)
		if err != nil {
			b.Logger.Printf("IndexBootstrapper: bootstrap failed, POST /api/init can retry it: %v", err)
		} else {
			b.Logger.Printf("IndexBootstrapper: %s", result.Message)
		}
	}
	b.attempted.Store(true)

	<-ctx.Done()
	return nil
}

// IsReady reports readiness once the startup attempt has finished.
func (b *IndexBootstrapper) IsReady(context.Context) error {
	if !b.attempted.Load() {
		return errors.New("startup bootstrap still running")
	}
	return nil
}
