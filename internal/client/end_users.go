package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

// EndUsersClient implements dixa.EndUsersClient.
type EndUsersClient struct {
	httpClient *http.Client
}

// NewEndUsersClient creates a new end users client.
func NewEndUsersClient(httpClient *http.Client) *EndUsersClient {
	return &EndUsersClient{
		httpClient: httpClient,
	}
}

// Create implements dixa.EndUsersClient.Create.
func (c *EndUsersClient) Create(ctx context.Context, request *dixa.EndUserRequest) (*dixa.EndUser, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/endusers", request)
	if err != nil {
		return nil, fmt.Errorf("creating end user: %w", err)
	}

	return decodeData[dixa.EndUser](resp.Body)
}

// CreateBulk implements dixa.EndUsersClient.CreateBulk.
func (c *EndUsersClient) CreateBulk(ctx context.Context, requests []dixa.EndUserRequest) ([]dixa.EndUserOutcome, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/endusers/bulk", map[string]interface{}{"data": requests})
	if err != nil {
		return nil, fmt.Errorf("creating end users: %w", err)
	}

	list, err := decodeList[dixa.EndUserOutcome](resp.Body)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

// Get implements dixa.EndUsersClient.Get.
func (c *EndUsersClient) Get(ctx context.Context, endUserID string) (*dixa.EndUser, error) {
	path := "/v1/endusers/" + endUserID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting end user: %w", err)
	}

	return decodeData[dixa.EndUser](resp.Body)
}

// List implements dixa.EndUsersClient.List.
func (c *EndUsersClient) List(ctx context.Context, params *dixa.QueryParams) (*dixa.ListResponse[dixa.EndUser], error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v1/endusers", queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing end users: %w", err)
	}

	return decodeList[dixa.EndUser](resp.Body)
}

// ListConversations implements dixa.EndUsersClient.ListConversations.
func (c *EndUsersClient) ListConversations(ctx context.Context, endUserID string) (*dixa.ListResponse[dixa.Conversation], error) {
	path := "/v1/endusers/" + endUserID + "/conversations"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing end user conversations: %w", err)
	}

	return decodeList[dixa.Conversation](resp.Body)
}

// Update implements dixa.EndUsersClient.Update.
func (c *EndUsersClient) Update(ctx context.Context, endUserID string, request *dixa.EndUserRequest) (*dixa.EndUser, error) {
	path := "/v1/endusers/" + endUserID

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating end user: %w", err)
	}

	return decodeData[dixa.EndUser](resp.Body)
}

// UpdateBulk implements dixa.EndUsersClient.UpdateBulk.
func (c *EndUsersClient) UpdateBulk(ctx context.Context, items []dixa.EndUserBulkItem) ([]dixa.EndUserOutcome, error) {
	resp, err := c.httpClient.Put(ctx, "/v1/endusers", map[string]interface{}{"data": items})
	if err != nil {
		return nil, fmt.Errorf("updating end users: %w", err)
	}

	list, err := decodeList[dixa.EndUserOutcome](resp.Body)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

// Patch implements dixa.EndUsersClient.Patch.
func (c *EndUsersClient) Patch(ctx context.Context, endUserID string, request *dixa.EndUserRequest) (*dixa.EndUser, error) {
	path := "/v1/endusers/" + endUserID

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("patching end user: %w", err)
	}

	return decodeData[dixa.EndUser](resp.Body)
}

// PatchBulk implements dixa.EndUsersClient.PatchBulk.
func (c *EndUsersClient) PatchBulk(ctx context.Context, items []dixa.EndUserBulkItem) ([]dixa.EndUserOutcome, error) {
	resp, err := c.httpClient.Patch(ctx, "/v1/endusers", map[string]interface{}{"data": items})
	if err != nil {
		return nil, fmt.Errorf("patching end users: %w", err)
	}

	list, err := decodeList[dixa.EndUserOutcome](resp.Body)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

// PatchCustomAttributes implements dixa.EndUsersClient.PatchCustomAttributes.
func (c *EndUsersClient) PatchCustomAttributes(ctx context.Context, endUserID string, attributes dixa.CustomAttributes) ([]dixa.CustomAttribute, error) {
	path := "/v1/endusers/" + endUserID + "/custom-attributes"

	resp, err := c.httpClient.Patch(ctx, path, attributes)
	if err != nil {
		return nil, fmt.Errorf("updating custom attributes: %w", err)
	}

	list, err := decodeList[dixa.CustomAttribute](resp.Body)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

// Anonymize implements dixa.EndUsersClient.Anonymize.
func (c *EndUsersClient) Anonymize(ctx context.Context, endUserID string) (*dixa.AnonymizationRequest, error) {
	path := "/v1/endusers/" + endUserID + "/anonymize"

	resp, err := c.httpClient.Patch(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("anonymizing end user: %w", err)
	}

	return decodeData[dixa.AnonymizationRequest](resp.Body)
}
