//go:build integration
// +build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/helplane-io/dixa-client/pkg/dixa"
	"github.com/helplane-io/dixa-client/pkg/dixaclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIntegrationClient builds a client from DIXA_API_KEY, skipping the test
// when no key is configured.
func newIntegrationClient(t *testing.T) dixa.Client {
	t.Helper()

	apiKey := os.Getenv("DIXA_API_KEY")
	if apiKey == "" {
		t.Skip("DIXA_API_KEY not set, skipping integration test")
	}

	client, err := dixaclient.NewWithAPIKey(apiKey)
	require.NoError(t, err)

	return client
}

func TestIntegration_ListQueues(t *testing.T) {
	client := newIntegrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	queues, err := client.Queues().List(ctx)
	require.NoError(t, err)

	// Every organization has at least a default queue.
	require.NotEmpty(t, queues.Data)
	for _, queue := range queues.Data {
		assert.NotEmpty(t, queue.ID)
		assert.NotEmpty(t, queue.Name)
	}
}

func TestIntegration_ListAgents(t *testing.T) {
	client := newIntegrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	agents, err := client.Agents().List(ctx, dixa.NewQueryParams().WithPageLimit(10))
	require.NoError(t, err)

	for _, agent := range agents.Data {
		assert.NotEmpty(t, agent.ID)
	}
}

func TestIntegration_TagLifecycle(t *testing.T) {
	client := newIntegrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	tag, err := client.Tags().Create(ctx, &dixa.CreateTagRequest{
		Name: "integration-test-" + time.Now().Format("20060102150405"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, tag.ID)

	// Tags cannot be deleted through the API, deactivate instead.
	defer func() {
		assert.NoError(t, client.Tags().Deactivate(context.Background(), tag.ID))
	}()

	fetched, err := client.Tags().Get(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, tag.Name, fetched.Name)
}

func TestIntegration_InvalidKeyReturnsAPIError(t *testing.T) {
	if os.Getenv("DIXA_API_KEY") == "" {
		t.Skip("DIXA_API_KEY not set, skipping integration test")
	}

	client, err := dixaclient.NewWithAPIKey("invalid-key")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = client.Queues().List(ctx)
	require.Error(t, err)
	assert.True(t, dixa.IsUnauthorized(err) || dixa.IsForbidden(err))
}
