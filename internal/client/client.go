package client

import (
	"encoding/json"
	"fmt"

	"github.com/helplane-io/dixa-client/internal/constants"
	"github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

// Client implements the dixa.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     dixa.Logger

	// Resource clients
	conversations    dixa.ConversationsClient
	endUsers         dixa.EndUsersClient
	agents           dixa.AgentsClient
	teams            dixa.TeamsClient
	queues           dixa.QueuesClient
	tags             dixa.TagsClient
	webhooks         dixa.WebhooksClient
	contactEndpoints dixa.ContactEndpointsClient
	analytics        dixa.AnalyticsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *dixa.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Dixa API client.
func New(config *dixa.Config) (*Client, error) {
	if config == nil {
		return nil, dixa.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, dixa.ErrAPIKeyRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(baseURL, config.APIKey, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Resource client accessors

// Conversations implements dixa.Client.Conversations.
func (c *Client) Conversations() dixa.ConversationsClient {
	return c.conversations
}

// EndUsers implements dixa.Client.EndUsers.
func (c *Client) EndUsers() dixa.EndUsersClient {
	return c.endUsers
}

// Agents implements dixa.Client.Agents.
func (c *Client) Agents() dixa.AgentsClient {
	return c.agents
}

// Teams implements dixa.Client.Teams.
func (c *Client) Teams() dixa.TeamsClient {
	return c.teams
}

// Queues implements dixa.Client.Queues.
func (c *Client) Queues() dixa.QueuesClient {
	return c.queues
}

// Tags implements dixa.Client.Tags.
func (c *Client) Tags() dixa.TagsClient {
	return c.tags
}

// Webhooks implements dixa.Client.Webhooks.
func (c *Client) Webhooks() dixa.WebhooksClient {
	return c.webhooks
}

// ContactEndpoints implements dixa.Client.ContactEndpoints.
func (c *Client) ContactEndpoints() dixa.ContactEndpointsClient {
	return c.contactEndpoints
}

// Analytics implements dixa.Client.Analytics.
func (c *Client) Analytics() dixa.AnalyticsClient {
	return c.analytics
}

// BaseURL returns the API base URL this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.conversations = NewConversationsClient(c.httpClient)
	c.endUsers = NewEndUsersClient(c.httpClient)
	c.agents = NewAgentsClient(c.httpClient)
	c.teams = NewTeamsClient(c.httpClient)
	c.queues = NewQueuesClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
	c.webhooks = NewWebhooksClient(c.httpClient)
	c.contactEndpoints = NewContactEndpointsClient(c.httpClient)
	c.analytics = NewAnalyticsClient(c.httpClient)
}

// dataEnvelope is the wrapper the API puts around most payloads.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
	Meta *dixa.ListMeta  `json:"meta,omitempty"`
}

// decodeData unmarshals a single resource from a response body. Most
// endpoints wrap the payload in a {"data": ...} envelope; a few older
// ones return the resource bare, so fall back to the whole body when
// no envelope is present.
func decodeData[T any](body []byte) (*T, error) {
	var envelope dataEnvelope

	raw := body

	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		raw = envelope.Data
	}

	var resource T

	err := json.Unmarshal(raw, &resource)
	if err != nil {
		return nil, fmt.Errorf("parsing response body: %w", err)
	}

	return &resource, nil
}

// decodeList unmarshals a collection response, preserving the paging
// cursors from the envelope's meta block.
func decodeList[T any](body []byte) (*dixa.ListResponse[T], error) {
	var envelope dataEnvelope

	raw := body

	var meta *dixa.ListMeta

	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		raw = envelope.Data
		meta = envelope.Meta
	}

	var items []T

	err := json.Unmarshal(raw, &items)
	if err != nil {
		return nil, fmt.Errorf("parsing response body: %w", err)
	}

	return &dixa.ListResponse[T]{Data: items, Meta: meta}, nil
}

// loggerAdapter adapts dixa.Logger to http.Logger.
type loggerAdapter struct {
	logger dixa.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
