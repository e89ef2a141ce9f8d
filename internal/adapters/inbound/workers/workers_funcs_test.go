package workers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// setupPubSubServer creates a pstest server with topic and subscription.
func setupPubSubServer(t *testing.T, ctx context.Context, topicID, subscriptionID string) (*pubsubV2.Client, string) {
	server := pstest.NewServer()
	t.Cleanup(func() {
		server.Close() //nolint:errcheck
	})

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close() //nolint:errcheck
	})

	projectID := "test-project"
	client, err := pubsubV2.NewClient(ctx, projectID, option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() {
		client.Close() //nolint:errcheck
	})

	topicName := "projects/" + projectID + "/topics/" + topicID
	topic, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	require.NoError(t, err)

	subName := "projects/" + projectID + "/subscriptions/" + subscriptionID
	_, err = client.SubscriptionAdminClient.CreateSubscription(
		ctx,
		&pubsubpb.Subscription{
			Name:  subName,
			Topic: topic.GetName(),
		},
	)
	require.NoError(t, err)

	return client, topicName
}

// publishMessages sends payloads to the topic, waiting for every server ack.
func publishMessages(ctx context.Context, client *pubsubV2.Client, topicName string, payloads [][]byte) error {
	for _, payload := range payloads {
		result := client.Publisher(topicName).Publish(ctx, &pubsubV2.Message{
			Data: payload,
		})
		if _, err := result.Get(ctx); err != nil {
			return err
		}
	}
	return nil
}

// run starts the runnable and returns a cancel function and a channel
// receiving the error Run returned.
func run(
	t *testing.T,
	ctx context.Context,
	runnable symbiont.Runnable,
) (context.CancelFunc, chan error) {
	t.Helper()

	runCtx, cancel := context.WithCancel(ctx)
	t.Cleanup(cancel)
	doneChan := make(chan error, 1)

	go func() {
		doneChan <- runnable.Run(runCtx)
	}()

	return cancel, doneChan
}

// waitRunnableStop waits until the runnable goroutine exits and checks it
// stopped without error.
func waitRunnableStop(t *testing.T, doneChan chan error) {
	t.Helper()

	select {
	case err := <-doneChan:
		assert.NoError(t, err)
	case <-time.After(1 * time.Second):
		t.Fatal("runnable did not shut down in time")
	}
}

// waitForBatchSignals waits for the expected number of batch processing signals or timeout.
func waitForBatchSignals(t *testing.T, signalChan chan struct{}, expectedBatches int, timeout time.Duration) {
	t.Helper()

	batchesProcessed := 0
	timeoutChan := time.After(timeout)
	for batchesProcessed < expectedBatches {
		select {
		case <-signalChan:
			batchesProcessed++
		case <-timeoutChan:
			t.Fatalf("timeout waiting for batch processing; got %d batches, expected %d", batchesProcessed, expectedBatches)
		}
	}
}

// moodEventPayload renders the outbox payload of a mood check event.
func moodEventPayload(t *testing.T, userID uuid.UUID) []byte {
	t.Helper()

	data, err := json.Marshal(map[string]string{
		"type":            "MOOD_CHECK.RECORDED",
		"selection_id":    uuid.NewString(),
		"user_id":         userID.String(),
		"selected_date":   "2026-10-14",
		"primary_emotion": "기쁨",
		"created_at":      "2026-10-14T00:30:00Z",
	})
	require.NoError(t, err)
	return data
}
