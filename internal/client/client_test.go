package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helplane-io/dixa-client/internal/constants"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

func TestNew(t *testing.T) {
	t.Run("requires config", func(t *testing.T) {
		client, err := New(nil)
		require.ErrorIs(t, err, dixa.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("requires API key", func(t *testing.T) {
		client, err := New(&dixa.Config{})
		require.ErrorIs(t, err, dixa.ErrAPIKeyRequired)
		assert.Nil(t, client)
	})

	t.Run("defaults base URL", func(t *testing.T) {
		client, err := New(&dixa.Config{APIKey: "tok_123"})
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultBaseURL, client.BaseURL())
	})

	t.Run("initializes all resource clients", func(t *testing.T) {
		client, err := New(&dixa.Config{APIKey: "tok_123", BaseURL: "https://dev.dixa.io"})
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
	})
}

func TestDecodeData(t *testing.T) {
	type payload struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	t.Run("enveloped body", func(t *testing.T) {
		result, err := decodeData[payload]([]byte(`{"data":{"id":42,"name":"inner"}}`))
		require.NoError(t, err)
		assert.Equal(t, int64(42), result.ID)
		assert.Equal(t, "inner", result.Name)
	})

	t.Run("bare body", func(t *testing.T) {
		result, err := decodeData[payload]([]byte(`{"id":42,"name":"bare"}`))
		require.NoError(t, err)
		assert.Equal(t, "bare", result.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		result, err := decodeData[payload]([]byte(`not json`))
		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestDecodeList(t *testing.T) {
	type payload struct {
		ID string `json:"id"`
	}

	t.Run("enveloped body with meta", func(t *testing.T) {
		list, err := decodeList[payload]([]byte(`{"data":[{"id":"a"},{"id":"b"}],"meta":{"next":"cursor-2","previous":null}}`))
		require.NoError(t, err)
		require.Len(t, list.Data, 2)
		assert.Equal(t, "b", list.Data[1].ID)
		require.NotNil(t, list.Meta)
		require.NotNil(t, list.Meta.Next)
		assert.Equal(t, "cursor-2", *list.Meta.Next)
		assert.Nil(t, list.Meta.Previous)
	})

	t.Run("bare array body", func(t *testing.T) {
		list, err := decodeList[payload]([]byte(`[{"id":"a"}]`))
		require.NoError(t, err)
		require.Len(t, list.Data, 1)
		assert.Nil(t, list.Meta)
	})

	t.Run("empty data", func(t *testing.T) {
		list, err := decodeList[payload]([]byte(`{"data":[]}`))
		require.NoError(t, err)
		assert.Empty(t, list.Data)
	})
}
