package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

func TestContactEndpointsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/contact-endpoints/ce-1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"_type":"EmailEndpoint","address":"support@example.com","name":"Support Inbox"}}`))
	}))
	defer server.Close()

	contactEndpoints := NewContactEndpointsClient(internalhttp.NewClient(server.URL, "tok_123"))

	endpoint, err := contactEndpoints.Get(context.Background(), "ce-1")
	require.NoError(t, err)
	assert.Equal(t, dixa.ContactEndpointEmail, endpoint.Type)
	assert.Equal(t, "support@example.com", endpoint.Address)
}

func TestContactEndpointsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/contact-endpoints", r.URL.Path)
		assert.Equal(t, "TelephonyEndpoint", r.URL.Query().Get("_type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"_type":"TelephonyEndpoint","address":"+4512345678"}]}`))
	}))
	defer server.Close()

	contactEndpoints := NewContactEndpointsClient(internalhttp.NewClient(server.URL, "tok_123"))

	params := dixa.NewQueryParams().WithFilter("_type", "TelephonyEndpoint")

	list, err := contactEndpoints.List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, dixa.ContactEndpointTelephony, list.Data[0].Type)
	assert.Equal(t, "+4512345678", list.Data[0].Address)
}
