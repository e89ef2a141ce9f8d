package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/bomi/internal/usecases"
)

// MessageRelay drains the mood event outbox to Pub/Sub on a fixed interval.
type MessageRelay struct {
	RelayOutbox         usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	workerExecutionChan chan struct{}
}

// Run relays a batch on every tick until ctx is cancelled. Consecutive
// failures are logged once when the streak starts and once when it ends.
func (op MessageRelay) Run(ctx context.Context) error {
	op.Logger.Printf("MessageRelay: relaying outbox every %s", op.Interval)
	ticker := time.NewTicker(op.Interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ticker.C:
			failures = op.relay(ctx, failures)
			if op.workerExecutionChan != nil {
				op.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			op.Logger.Println("MessageRelay: stopping...")
			return nil
		}
	}
}

func (op MessageRelay) relay(ctx context.Context, failures int) int {
	if err := op.RelayOutbox.Execute(ctx); err != nil {
		if failures == 0 {
			op.Logger.Printf("MessageRelay: error relaying batch: %v", err)
		}
		return failures + 1
	}
	if failures > 0 {
		op.Logger.Printf("MessageRelay: recovered after %d failed batches", failures)
	}
	return 0
}
