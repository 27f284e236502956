package dixaclient

import (
	"fmt"
	"strings"

	"github.com/helplane-io/dixa-client/internal/client"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

// New creates a new Dixa API client from a config.
func New(config *dixa.Config) (dixa.Client, error) {
	if config == nil {
		return nil, dixa.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, dixa.ErrAPIKeyRequired
	}

	// Normalize base URL
	if config.BaseURL != "" {
		baseURL := strings.TrimSuffix(config.BaseURL, "/")
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			baseURL = "https://" + baseURL
		}

		config.BaseURL = baseURL
	}

	// Use the internal client implementation
	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a new client against the default API host.
func NewWithAPIKey(apiKey string) (dixa.Client, error) {
	return New(&dixa.Config{
		APIKey: apiKey,
	})
}

// NewWithBaseURL creates a new client against a custom API host.
func NewWithBaseURL(apiKey, baseURL string) (dixa.Client, error) {
	return New(&dixa.Config{
		APIKey:  apiKey,
		BaseURL: baseURL,
	})
}
