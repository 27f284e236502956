package dixaclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helplane-io/dixa-client/pkg/dixa"
	"github.com/helplane-io/dixa-client/pkg/dixaclient"
)

func TestNew_Validation(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		client, err := dixaclient.New(nil)
		require.ErrorIs(t, err, dixa.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("missing API key", func(t *testing.T) {
		client, err := dixaclient.New(&dixa.Config{BaseURL: "https://dev.dixa.io"})
		require.ErrorIs(t, err, dixa.ErrAPIKeyRequired)
		assert.Nil(t, client)
	})

	t.Run("empty API key via helper", func(t *testing.T) {
		client, err := dixaclient.NewWithAPIKey("")
		require.ErrorIs(t, err, dixa.ErrAPIKeyRequired)
		assert.Nil(t, client)
	})
}

func TestNew_NormalizesBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tags", r.URL.Path)
		assert.Equal(t, "Bearer tok_123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	// Trailing slash should be trimmed before paths are appended.
	client, err := dixaclient.NewWithBaseURL("tok_123", server.URL+"/")
	require.NoError(t, err)

	list, err := client.Tags().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list.Data)
}

func TestNew_FullSurface(t *testing.T) {
	client, err := dixaclient.NewWithAPIKey("tok_123")
	require.NoError(t, err)

	assert.NotNil(t, client.Conversations())
	assert.NotNil(t, client.EndUsers())
	assert.NotNil(t, client.Agents())
	assert.NotNil(t, client.Teams())
	assert.NotNil(t, client.Queues())
	assert.NotNil(t, client.Tags())
	assert.NotNil(t, client.Webhooks())
	assert.NotNil(t, client.ContactEndpoints())
	assert.NotNil(t, client.Analytics())
}
