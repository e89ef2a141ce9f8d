package workers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/bomi/internal/usecases"
	"github.com/google/uuid"
)

// moodEventMessage is the part of a mood check event the generator needs.
type moodEventMessage struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
}

// receivedMessage is a pulled mood event together with its settle callbacks.
type receivedMessage struct {
	id   string
	data []byte
	ack  func()
	nack func()
}

func fromPubSub(msg *pubsub.Message) receivedMessage {
	return receivedMessage{id: msg.ID, data: msg.Data, ack: msg.Ack, nack: msg.Nack}
}

// WeeklyReportGenerator consumes mood check events from Pub/Sub and
// regenerates the current weekly report of every user seen in a batch.
type WeeklyReportGenerator struct {
	Logger               *log.Logger                   `resolve:""`
	Client               *pubsub.Client                `resolve:""`
	GenerateWeeklyReport usecases.GenerateWeeklyReport `resolve:""`
	Interval             time.Duration                 `config:"REPORT_BATCH_INTERVAL" default:"5s"`
	BatchSize            int                           `config:"REPORT_BATCH_SIZE" default:"20"`
	SubscriptionID       string                        `config:"MOOD_EVENTS_SUBSCRIPTION_ID" default:"mood-events-report-generator"`
	workerExecutionChan  chan struct{}
}

// Run starts the subscriber worker.
func (g WeeklyReportGenerator) Run(ctx context.Context) error {
	g.Logger.Println("WeeklyReportGenerator: running...")

	batchSize := max(g.BatchSize, 1)
	eventCh := make(chan receivedMessage, batchSize*2)
	subscriberErrCh := make(chan error, 1)

	go func() {
		err := g.Client.Subscriber(g.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- fromPubSub(msg):
				// Acked after the batch is processed
			case <-ctx.Done():
				msg.Nack()
			}
		})
		if err != nil {
			subscriberErrCh <- err
		}
	}()

	ticker := time.NewTicker(g.Interval)
	defer ticker.Stop()

	var batch []receivedMessage
	for {
		select {
		case <-ctx.Done():
			g.Logger.Println("WeeklyReportGenerator: stopping...")
			return nil

		case err := <-subscriberErrCh:
			return err

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				g.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				g.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

// flush acks the messages of every user whose report was stored and nacks
// the rest for redelivery. Undecodable messages are acked and dropped.
func (g WeeklyReportGenerator) flush(ctx context.Context, batch []receivedMessage) {
	g.Logger.Printf("WeeklyReportGenerator: processing batch size=%d", len(batch))

	var users []uuid.UUID
	byUser := map[uuid.UUID][]receivedMessage{}
	for _, msg := range batch {
		var event moodEventMessage
		if err := json.Unmarshal(msg.data, &event); err != nil {
			g.Logger.Printf("WeeklyReportGenerator: dropping malformed message %s: %v", msg.id, err)
			msg.ack()
			continue
		}
		userID, err := uuid.Parse(event.UserID)
		if err != nil || userID == uuid.Nil {
			g.Logger.Printf("WeeklyReportGenerator: dropping message %s with invalid user id %q", msg.id, event.UserID)
			msg.ack()
			continue
		}
		if _, seen := byUser[userID]; !seen {
			users = append(users, userID)
		}
		byUser[userID] = append(byUser[userID], msg)
	}

	for _, userID := range users {
		_, err := g.GenerateWeeklyReport.Execute(ctx, userID)
		for _, msg := range byUser[userID] {
			if err != nil {
				msg.nack()
				continue
			}
			msg.ack()
		}
		if err != nil {
			g.Logger.Printf("WeeklyReportGenerator: report generation failed for user %s: %v", userID, err)
		}
	}

	if g.workerExecutionChan != nil {
		g.workerExecutionChan <- struct{}{}
	}
}
