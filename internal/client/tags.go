package client

import (
	"context"
	"fmt"

	"github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

// TagsClient implements dixa.TagsClient.
type TagsClient struct {
	httpClient *http.Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{
		httpClient: httpClient,
	}
}

// Create implements dixa.TagsClient.Create.
func (c *TagsClient) Create(ctx context.Context, request *dixa.CreateTagRequest) (*dixa.Tag, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/tags", request)
	if err != nil {
		return nil, fmt.Errorf("creating tag: %w", err)
	}

	return decodeData[dixa.Tag](resp.Body)
}

// Get implements dixa.TagsClient.Get.
func (c *TagsClient) Get(ctx context.Context, tagID string) (*dixa.Tag, error) {
	path := "/v1/tags/" + tagID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tag: %w", err)
	}

	return decodeData[dixa.Tag](resp.Body)
}

// List implements dixa.TagsClient.List.
func (c *TagsClient) List(ctx context.Context) (*dixa.ListResponse[dixa.Tag], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	return decodeList[dixa.Tag](resp.Body)
}

// Activate implements dixa.TagsClient.Activate.
func (c *TagsClient) Activate(ctx context.Context, tagID string) error {
	path := "/v1/tags/" + tagID + "/activate"

	_, err := c.httpClient.Patch(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("activating tag: %w", err)
	}

	return nil
}

// Deactivate implements dixa.TagsClient.Deactivate.
func (c *TagsClient) Deactivate(ctx context.Context, tagID string) error {
	path := "/v1/tags/" + tagID + "/deactivate"

	_, err := c.httpClient.Patch(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deactivating tag: %w", err)
	}

	return nil
}
