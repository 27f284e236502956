package commands

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClient_RequiresToken(t *testing.T) {
	viper.Reset()

	client, err := CreateClient()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPIKeyNotConfigured)
	assert.Nil(t, client)
}

func TestCreateClient_UsesConfiguredToken(t *testing.T) {
	viper.Reset()
	viper.Set("token", "tok_test")
	viper.Set("api-url", "https://dev.dixa.io")

	t.Cleanup(viper.Reset)

	client, err := CreateClient()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestFlatten(t *testing.T) {
	kv := flatten(map[string]interface{}{"method": "GET"})
	assert.Equal(t, []interface{}{"method", "GET"}, kv)

	assert.Empty(t, flatten(nil))
}

func TestStringOrNA(t *testing.T) {
	assert.Equal(t, NotAvailable, stringOrNA(nil))

	empty := ""
	assert.Equal(t, NotAvailable, stringOrNA(&empty))

	value := "jane@example.com"
	assert.Equal(t, "jane@example.com", stringOrNA(&value))
}
