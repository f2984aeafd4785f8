package pubsub

import (
	"context"
	"io"
	"log"
	"testing"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const testProjectID = "test-project"

func newTestClient(t *testing.T) *pubsubV2.Client {
	t.Helper()

	server := pstest.NewServer()
	t.Cleanup(func() { server.Close() }) //nolint:errcheck

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() }) //nolint:errcheck

	client, err := pubsubV2.NewClient(
		context.Background(),
		testProjectID,
		option.WithGRPCConn(conn),
	)
	require.NoError(t, err)
	return client
}

func TestInitClient_Initialize(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	init := &InitClient{
		Logger:         log.New(io.Discard, "", 0),
		ProjectID:      testProjectID,
		EnsureTopology: true,
		SubscriptionID: "embedding-refresh-sub",
		client:         client,
	}

	_, err := init.Initialize(ctx)
	assert.NoError(t, err)

	_, err = depend.Resolve[*pubsubV2.Client]()
	assert.NoError(t, err)

	sub, err := client.SubscriptionAdminClient.GetSubscription(ctx, &pubsubpb.GetSubscriptionRequest{
		Subscription: "projects/test-project/subscriptions/embedding-refresh-sub",
	})
	assert.NoError(t, err)
	assert.Equal(t, "projects/test-project/topics/EmbeddingRefresh", sub.GetTopic())

	init.Close()
}

func TestEnsureTopology_Idempotent(t *testing.T) {
	client := newTestClient(t)
	defer client.Close() //nolint:errcheck
	ctx := context.Background()

	assert.NoError(t, EnsureTopology(ctx, client, testProjectID, "EmbeddingRefresh", "embedding-refresh-sub"))
	assert.NoError(t, EnsureTopology(ctx, client, testProjectID, "EmbeddingRefresh", "embedding-refresh-sub"))
}
