// Package pubsub carries outbox events to Google Cloud Pub/Sub.
package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InitClient creates the Pub/Sub client. With EnsureTopology set, the embedding
// refresh topic and its subscription are created when missing, which is how a
// fresh emulator gets provisioned.
type InitClient struct {
	Logger         *log.Logger `resolve:""`
	ProjectID      string      `config:"PUBSUB_PROJECT_ID"`
	EnsureTopology bool        `config:"PUBSUB_ENSURE_TOPOLOGY" default:"false"`
	SubscriptionID string      `config:"EMBEDDING_REFRESH_SUBSCRIPTION_ID" default:"embedding-refresh-sub"`
	client         *pubsubV2.Client
}

// Initialize registers the *pubsubV2.Client in the dependency container.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	if i.EnsureTopology {
		if err := EnsureTopology(ctx, i.client, i.ProjectID, string(domain.OutboxTopic_EmbeddingRefresh), i.SubscriptionID); err != nil {
			return ctx, err
		}
		i.Logger.Printf("InitClient: topic %s and subscription %s are ready", domain.OutboxTopic_EmbeddingRefresh, i.SubscriptionID)
	}

	depend.Register(i.client)

	return ctx, nil
}

// Close closes the Pub/Sub client.
func (i *InitClient) Close() {
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}

// EnsureTopology creates topicID and a subscription on it unless they already exist.
func EnsureTopology(ctx context.Context, client *pubsubV2.Client, projectID, topicID, subscriptionID string) error {
	topicName := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to create topic %s: %w", topicID, err)
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
