package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

func TestWebhooksClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/webhooks", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request dixa.CreateWebhookRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		require.NoError(t, err)
		assert.Equal(t, "conversation events", request.Name)
		assert.Equal(t, []string{"CONVERSATION_CREATED"}, request.Events)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"wh-1","name":"conversation events","url":"https://example.com/hook","enabled":true,"subscribedEvents":["CONVERSATION_CREATED"]}}`))
	}))
	defer server.Close()

	webhooks := NewWebhooksClient(internalhttp.NewClient(server.URL, "tok_123"))

	webhook, err := webhooks.Create(context.Background(), &dixa.CreateWebhookRequest{
		Name:    "conversation events",
		URL:     "https://example.com/hook",
		Enabled: true,
		Events:  []string{"CONVERSATION_CREATED"},
	})
	require.NoError(t, err)
	assert.Equal(t, "wh-1", webhook.ID)
	assert.True(t, webhook.Enabled)
}

func TestWebhooksClient_Patch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/webhooks/wh-1", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var body map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		// Only the enabled flag should be present.
		assert.Equal(t, map[string]interface{}{"enabled": false}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"wh-1","name":"conversation events","url":"https://example.com/hook","enabled":false}}`))
	}))
	defer server.Close()

	webhooks := NewWebhooksClient(internalhttp.NewClient(server.URL, "tok_123"))

	enabled := false
	webhook, err := webhooks.Patch(context.Background(), "wh-1", &dixa.PatchWebhookRequest{Enabled: &enabled})
	require.NoError(t, err)
	assert.False(t, webhook.Enabled)
}

func TestWebhooksClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/webhooks/wh-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	webhooks := NewWebhooksClient(internalhttp.NewClient(server.URL, "tok_123"))

	err := webhooks.Delete(context.Background(), "wh-1")
	require.NoError(t, err)
}

func TestWebhooksClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/webhooks", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"wh-1","name":"a","url":"https://example.com/a","enabled":true}]}`))
	}))
	defer server.Close()

	webhooks := NewWebhooksClient(internalhttp.NewClient(server.URL, "tok_123"))

	list, err := webhooks.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "wh-1", list.Data[0].ID)
}

func TestWebhooksClient_ListDeliveryStatuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/webhooks/wh-1/delivery-statuses", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"event":"CONVERSATION_CREATED","success":true,"statusCode":200}]}`))
	}))
	defer server.Close()

	webhooks := NewWebhooksClient(internalhttp.NewClient(server.URL, "tok_123"))

	list, err := webhooks.ListDeliveryStatuses(context.Background(), "wh-1")
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.True(t, list.Data[0].Success)
	require.NotNil(t, list.Data[0].StatusCode)
	assert.Equal(t, 200, *list.Data[0].StatusCode)
}
