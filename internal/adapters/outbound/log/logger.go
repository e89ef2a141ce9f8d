package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"[bomi] "`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(New(il.Prefix))
	return ctx, nil
}

// New creates the application logger. The prefix is placed right before each message.
func New(prefix string) *log.Logger {
	return log.New(os.Stdout, prefix, log.LstdFlags|log.Lmsgprefix)
}
