// Package pubsub carries mood events over Google Cloud Pub/Sub. The client
// honors PUBSUB_EMULATOR_HOST, so local runs can use the emulator.
package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InitClient creates the Pub/Sub client and, when asked to, the mood events
// topic and its subscription.
type InitClient struct {
	Logger         *log.Logger `resolve:""`
	ProjectID      string      `config:"PUBSUB_PROJECT_ID" default:"bomi"`
	SubscriptionID string      `config:"MOOD_EVENTS_SUBSCRIPTION_ID" default:"mood-events-report-generator"`
	EnsureTopology bool        `config:"PUBSUB_ENSURE_TOPOLOGY" default:"false"`
	client         *pubsubV2.Client
}

// Initialize registers the *pubsub.Client in the dependency container.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	if i.EnsureTopology {
		err := EnsureTopology(ctx, i.client, i.ProjectID, string(domain.OutboxTopic_MoodEvents), i.SubscriptionID)
		if err != nil {
			return ctx, err
		}
		i.Logger.Printf("InitClient: topic %s and subscription %s are ready", domain.OutboxTopic_MoodEvents, i.SubscriptionID)
	}

	depend.Register(i.client)
	return ctx, nil
}

// Close closes the Pub/Sub client.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}

// EnsureTopology creates the topic and a pull subscription on it. Existing
// resources are left untouched.
func EnsureTopology(ctx context.Context, client *pubsubV2.Client, projectID, topicID, subscriptionID string) error {
	topicName := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to create topic %s: %w", topicID, err)
	}

	if subscriptionID == "" {
		return nil
	}
	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  fmt.Sprintf("projects/%s/subscriptions/%s", projectID, subscriptionID),
		Topic: topicName,
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to create subscription %s: %w", subscriptionID, err)
	}
	return nil
}
