package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

// ContactEndpointsClient implements dixa.ContactEndpointsClient.
type ContactEndpointsClient struct {
	httpClient *http.Client
}

// NewContactEndpointsClient creates a new contact endpoints client.
func NewContactEndpointsClient(httpClient *http.Client) *ContactEndpointsClient {
	return &ContactEndpointsClient{
		httpClient: httpClient,
	}
}

// Get implements dixa.ContactEndpointsClient.Get.
func (c *ContactEndpointsClient) Get(ctx context.Context, contactEndpointID string) (*dixa.ContactEndpoint, error) {
	path := "/v1/contact-endpoints/" + contactEndpointID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting contact endpoint: %w", err)
	}

	return decodeData[dixa.ContactEndpoint](resp.Body)
}

// List implements dixa.ContactEndpointsClient.List.
func (c *ContactEndpointsClient) List(ctx context.Context, params *dixa.QueryParams) (*dixa.ListResponse[dixa.ContactEndpoint], error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v1/contact-endpoints", queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing contact endpoints: %w", err)
	}

	return decodeList[dixa.ContactEndpoint](resp.Body)
}
