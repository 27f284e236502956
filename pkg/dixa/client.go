package dixa

import (
	"errors"
	"time"
)

// Static errors for client construction.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyRequired = errors.New("API key is required")
	ErrNoMoreItems    = errors.New("no more items")
)

// PeopleClients provides access to user-oriented resource clients.
type PeopleClients interface {
	EndUsers() EndUsersClient
	Agents() AgentsClient
	Teams() TeamsClient
}

// RoutingClients provides access to routing-oriented resource clients.
type RoutingClients interface {
	Queues() QueuesClient
	ContactEndpoints() ContactEndpointsClient
}

// ConversationClients provides access to conversation-oriented resource clients.
type ConversationClients interface {
	Conversations() ConversationsClient
	Tags() TagsClient
}

// IntegrationClients provides access to integration resource clients.
type IntegrationClients interface {
	Webhooks() WebhooksClient
	Analytics() AnalyticsClient
}

// Client is the full Dixa API client surface.
type Client interface {
	// Composite interfaces for related resource groups
	PeopleClients
	RoutingClients
	ConversationClients
	IntegrationClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a dixa.Client.
//
// # Authentication
//
// The Dixa API authenticates every request with a static API key sent as a
// Bearer token in the Authorization header. The key is fixed at construction
// and never mutated by the client.
//
// # Timeouts and retries
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods; HTTPTimeout caps the whole exchange as a backstop.
// Transient failures (connection errors, 429, 5xx) are retried by the
// underlying HTTP library; tune with RetryMax/RetryWaitMin/RetryWaitMax.
type Config struct {
	// APIKey: the Dixa API token. Required.
	APIKey string

	// BaseURL: base URL for the Dixa API. Defaults to "https://dev.dixa.io".
	// dixaclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	BaseURL string

	// HTTPTimeout: optional cap on the total duration of a single request.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. If 0, the
	// transport's default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
