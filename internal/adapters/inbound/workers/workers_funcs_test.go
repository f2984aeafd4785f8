package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const testProjectID = "test-project"

// refreshTopic is an in-memory Pub/Sub topic with a single subscription.
type refreshTopic struct {
	client         *pubsubV2.Client
	topicName      string
	subscriptionID string
}

// newRefreshTopic starts a pstest server with the EmbeddingRefresh topology
// used by the subscriber, named after suffix so subtests stay isolated.
func newRefreshTopic(t *testing.T, suffix string) refreshTopic {
	t.Helper()
	ctx := t.Context()

	server := pstest.NewServer()
	t.Cleanup(func() { server.Close() }) //nolint:errcheck

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() }) //nolint:errcheck

	client, err := pubsubV2.NewClient(ctx, testProjectID, option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() }) //nolint:errcheck

	rt := refreshTopic{
		client:         client,
		topicName:      fmt.Sprintf("projects/%s/topics/%s-%s", testProjectID, domain.OutboxTopic_EmbeddingRefresh, suffix),
		subscriptionID: "embedding-refresh-sub-" + suffix,
	}

	_, err = client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: rt.topicName})
	require.NoError(t, err)

	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  fmt.Sprintf("projects/%s/subscriptions/%s", testProjectID, rt.subscriptionID),
		Topic: rt.topicName,
	})
	require.NoError(t, err)

	return rt
}

// publish sends each payload and waits for the server to accept it.
func (rt refreshTopic) publish(t *testing.T, payloads ...[]byte) {
	t.Helper()
	publisher := rt.client.Publisher(rt.topicName)
	for _, payload := range payloads {
		_, err := publisher.Publish(t.Context(), &pubsubV2.Message{Data: payload}).Get(t.Context())
		require.NoError(t, err)
	}
}

// refreshPayload encodes an event the way the outbox relay publishes it.
func refreshPayload(t *testing.T, event domain.EmbeddingRefreshRequested) []byte {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return data
}

// run starts the runnable in the background. The returned channel is
// closed once Run returns.
func run(t *testing.T, ctx context.Context, runnable symbiont.Runnable) (context.CancelFunc, <-chan struct{}) {
	t.Helper()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		assert.NoError(t, runnable.Run(runCtx))
	}()

	return cancel, done
}

func waitRunnableStop(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runnable did not shut down in time")
	}
}

// waitForBatchSignals blocks until the worker reports n finished batches.
func waitForBatchSignals(t *testing.T, signals <-chan struct{}, n int, timeout time.Duration) {
	t.Helper()

	deadline := time.After(timeout)
	for got := 0; got < n; got++ {
		select {
		case <-signals:
		case <-deadline:
			t.Fatalf("timeout waiting for batches: got %d, expected %d", got, n)
		}
	}
}
