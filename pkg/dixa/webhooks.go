package dixa

import (
	"context"
	"time"
)

// WebhookSubscription represents a registered webhook.
type WebhookSubscription struct {
	ID      string   `json:"id"                yaml:"id"`
	Name    string   `json:"name"              yaml:"name"`
	URL     string   `json:"url"               yaml:"url"`
	Enabled bool     `json:"enabled"           yaml:"enabled"`
	Secret  *string  `json:"secret,omitempty"  yaml:"secret,omitempty"`
	Events  []string `json:"subscribedEvents,omitempty" yaml:"subscribedEvents,omitempty"`
}

// CreateWebhookRequest is the body for registering a webhook.
type CreateWebhookRequest struct {
	Name    string   `json:"name"              yaml:"name"`
	URL     string   `json:"url"               yaml:"url"`
	Enabled bool     `json:"enabled"           yaml:"enabled"`
	Secret  string   `json:"secret,omitempty"  yaml:"secret,omitempty"`
	Events  []string `json:"subscribedEvents"  yaml:"subscribedEvents"`
}

// PatchWebhookRequest is the body for partially updating a webhook. Nil
// fields are left untouched.
type PatchWebhookRequest struct {
	Name    *string  `json:"name,omitempty"             yaml:"name,omitempty"`
	URL     *string  `json:"url,omitempty"              yaml:"url,omitempty"`
	Enabled *bool    `json:"enabled,omitempty"          yaml:"enabled,omitempty"`
	Secret  *string  `json:"secret,omitempty"           yaml:"secret,omitempty"`
	Events  []string `json:"subscribedEvents,omitempty" yaml:"subscribedEvents,omitempty"`
}

// WebhookDeliveryStatus reports the most recent delivery attempt for one
// subscribed event.
type WebhookDeliveryStatus struct {
	Event       string     `json:"event"                 yaml:"event"`
	Success     bool       `json:"success"               yaml:"success"`
	StatusCode  *int       `json:"statusCode,omitempty"  yaml:"statusCode,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty" yaml:"deliveredAt,omitempty"`
}

// WebhooksClient provides access to the Webhooks endpoints.
type WebhooksClient interface {
	Create(ctx context.Context, request *CreateWebhookRequest) (*WebhookSubscription, error)
	Delete(ctx context.Context, webhookID string) error
	Get(ctx context.Context, webhookID string) (*WebhookSubscription, error)
	List(ctx context.Context) (*ListResponse[WebhookSubscription], error)
	Patch(ctx context.Context, webhookID string, request *PatchWebhookRequest) (*WebhookSubscription, error)
	ListDeliveryStatuses(ctx context.Context, webhookID string) (*ListResponse[WebhookDeliveryStatus], error)
}
