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

func TestAgentsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/agents/agent-1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"agent-1","email":"sam@example.com","displayName":"Sam","roles":["Agent"]}}`))
	}))
	defer server.Close()

	agents := NewAgentsClient(internalhttp.NewClient(server.URL, "tok_123"))

	agent, err := agents.Get(context.Background(), "agent-1")
	require.NoError(t, err)
	assert.Equal(t, "agent-1", agent.ID)
	assert.Equal(t, "sam@example.com", agent.Email)
	assert.Equal(t, []string{"Agent"}, agent.Roles)
}

func TestAgentsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/agents", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request dixa.AgentRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		require.NoError(t, err)
		assert.Equal(t, "sam@example.com", request.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"agent-1","email":"sam@example.com","displayName":"Sam"}}`))
	}))
	defer server.Close()

	agents := NewAgentsClient(internalhttp.NewClient(server.URL, "tok_123"))

	agent, err := agents.Create(context.Background(), &dixa.AgentRequest{
		Email:       "sam@example.com",
		DisplayName: "Sam",
	})
	require.NoError(t, err)
	assert.Equal(t, "agent-1", agent.ID)
}

func TestAgentsClient_GetPresence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/agents/agent-1/presence", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"agentId":"agent-1","presenceStatus":"Working","connectionStatus":"Online","activeChannels":["Chat","Telephony"]}}`))
	}))
	defer server.Close()

	agents := NewAgentsClient(internalhttp.NewClient(server.URL, "tok_123"))

	presence, err := agents.GetPresence(context.Background(), "agent-1")
	require.NoError(t, err)
	assert.Equal(t, "agent-1", presence.AgentID)
	assert.Equal(t, dixa.PresenceWorking, presence.PresenceStatus)
	assert.Equal(t, []dixa.Channel{dixa.ChannelChat, dixa.ChannelTelephony}, presence.ActiveChannels)
}

func TestAgentsClient_ListPresence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/agents/presence", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"agentId":"agent-1","presenceStatus":"Working"},{"agentId":"agent-2","presenceStatus":"Away"}]}`))
	}))
	defer server.Close()

	agents := NewAgentsClient(internalhttp.NewClient(server.URL, "tok_123"))

	list, err := agents.ListPresence(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, dixa.PresenceAway, list.Data[1].PresenceStatus)
}

func TestAgentsClient_PatchBulk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/agents", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var body struct {
			Data []map[string]interface{} `json:"data"`
		}
		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "agent-1", body.Data[0]["id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"_type":"Success","data":{"id":"agent-1","displayName":"Sam A."}}]}`))
	}))
	defer server.Close()

	agents := NewAgentsClient(internalhttp.NewClient(server.URL, "tok_123"))

	outcomes, err := agents.PatchBulk(context.Background(), []dixa.AgentBulkItem{
		{ID: "agent-1", AgentRequest: dixa.AgentRequest{DisplayName: "Sam A."}},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Succeeded())
}

func TestAgentsClient_UpdateBulk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/agents", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var body struct {
			Data []map[string]interface{} `json:"data"`
		}
		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "agent-1", body.Data[0]["id"])
		assert.Equal(t, "sam@example.com", body.Data[0]["email"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"_type":"Success","data":{"id":"agent-1","email":"sam@example.com"}}]}`))
	}))
	defer server.Close()

	agents := NewAgentsClient(internalhttp.NewClient(server.URL, "tok_123"))

	outcomes, err := agents.UpdateBulk(context.Background(), []dixa.AgentBulkItem{
		{ID: "agent-1", AgentRequest: dixa.AgentRequest{Email: "sam@example.com"}},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Succeeded())
}
