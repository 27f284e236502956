package client

import (
	"context"
	"fmt"

	"github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

// WebhooksClient implements dixa.WebhooksClient.
type WebhooksClient struct {
	httpClient *http.Client
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(httpClient *http.Client) *WebhooksClient {
	return &WebhooksClient{
		httpClient: httpClient,
	}
}

// Create implements dixa.WebhooksClient.Create.
func (c *WebhooksClient) Create(ctx context.Context, request *dixa.CreateWebhookRequest) (*dixa.WebhookSubscription, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/webhooks", request)
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	return decodeData[dixa.WebhookSubscription](resp.Body)
}

// Delete implements dixa.WebhooksClient.Delete.
func (c *WebhooksClient) Delete(ctx context.Context, webhookID string) error {
	path := "/v1/webhooks/" + webhookID

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}

	return nil
}

// Get implements dixa.WebhooksClient.Get.
func (c *WebhooksClient) Get(ctx context.Context, webhookID string) (*dixa.WebhookSubscription, error) {
	path := "/v1/webhooks/" + webhookID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting webhook: %w", err)
	}

	return decodeData[dixa.WebhookSubscription](resp.Body)
}

// List implements dixa.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context) (*dixa.ListResponse[dixa.WebhookSubscription], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/webhooks", nil)
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	return decodeList[dixa.WebhookSubscription](resp.Body)
}

// Patch implements dixa.WebhooksClient.Patch.
func (c *WebhooksClient) Patch(ctx context.Context, webhookID string, request *dixa.PatchWebhookRequest) (*dixa.WebhookSubscription, error) {
	path := "/v1/webhooks/" + webhookID

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("patching webhook: %w", err)
	}

	return decodeData[dixa.WebhookSubscription](resp.Body)
}

// ListDeliveryStatuses implements dixa.WebhooksClient.ListDeliveryStatuses.
func (c *WebhooksClient) ListDeliveryStatuses(ctx context.Context, webhookID string) (*dixa.ListResponse[dixa.WebhookDeliveryStatus], error) {
	path := "/v1/webhooks/" + webhookID + "/delivery-statuses"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing webhook delivery statuses: %w", err)
	}

	return decodeList[dixa.WebhookDeliveryStatus](resp.Body)
}
