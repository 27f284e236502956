package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

// AgentsClient implements dixa.AgentsClient.
type AgentsClient struct {
	httpClient *http.Client
}

// NewAgentsClient creates a new agents client.
func NewAgentsClient(httpClient *http.Client) *AgentsClient {
	return &AgentsClient{
		httpClient: httpClient,
	}
}

// Create implements dixa.AgentsClient.Create.
func (c *AgentsClient) Create(ctx context.Context, request *dixa.AgentRequest) (*dixa.Agent, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/agents", request)
	if err != nil {
		return nil, fmt.Errorf("creating agent: %w", err)
	}

	return decodeData[dixa.Agent](resp.Body)
}

// CreateBulk implements dixa.AgentsClient.CreateBulk.
func (c *AgentsClient) CreateBulk(ctx context.Context, requests []dixa.AgentRequest) ([]dixa.AgentOutcome, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/agents/bulk", map[string]interface{}{"data": requests})
	if err != nil {
		return nil, fmt.Errorf("creating agents: %w", err)
	}

	list, err := decodeList[dixa.AgentOutcome](resp.Body)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

// Get implements dixa.AgentsClient.Get.
func (c *AgentsClient) Get(ctx context.Context, agentID string) (*dixa.Agent, error) {
	path := "/v1/agents/" + agentID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting agent: %w", err)
	}

	return decodeData[dixa.Agent](resp.Body)
}

// GetPresence implements dixa.AgentsClient.GetPresence.
func (c *AgentsClient) GetPresence(ctx context.Context, agentID string) (*dixa.AgentPresence, error) {
	path := "/v1/agents/" + agentID + "/presence"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting agent presence: %w", err)
	}

	return decodeData[dixa.AgentPresence](resp.Body)
}

// List implements dixa.AgentsClient.List.
func (c *AgentsClient) List(ctx context.Context, params *dixa.QueryParams) (*dixa.ListResponse[dixa.Agent], error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v1/agents", queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}

	return decodeList[dixa.Agent](resp.Body)
}

// ListPresence implements dixa.AgentsClient.ListPresence.
func (c *AgentsClient) ListPresence(ctx context.Context) (*dixa.ListResponse[dixa.AgentPresence], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/agents/presence", nil)
	if err != nil {
		return nil, fmt.Errorf("listing agent presence: %w", err)
	}

	return decodeList[dixa.AgentPresence](resp.Body)
}

// Update implements dixa.AgentsClient.Update.
func (c *AgentsClient) Update(ctx context.Context, agentID string, request *dixa.AgentRequest) (*dixa.Agent, error) {
	path := "/v1/agents/" + agentID

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating agent: %w", err)
	}

	return decodeData[dixa.Agent](resp.Body)
}

// UpdateBulk implements dixa.AgentsClient.UpdateBulk.
func (c *AgentsClient) UpdateBulk(ctx context.Context, items []dixa.AgentBulkItem) ([]dixa.AgentOutcome, error) {
	resp, err := c.httpClient.Put(ctx, "/v1/agents", map[string]interface{}{"data": items})
	if err != nil {
		return nil, fmt.Errorf("updating agents: %w", err)
	}

	list, err := decodeList[dixa.AgentOutcome](resp.Body)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

// Patch implements dixa.AgentsClient.Patch.
func (c *AgentsClient) Patch(ctx context.Context, agentID string, request *dixa.AgentRequest) (*dixa.Agent, error) {
	path := "/v1/agents/" + agentID

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("patching agent: %w", err)
	}

	return decodeData[dixa.Agent](resp.Body)
}

// PatchBulk implements dixa.AgentsClient.PatchBulk.
func (c *AgentsClient) PatchBulk(ctx context.Context, items []dixa.AgentBulkItem) ([]dixa.AgentOutcome, error) {
	resp, err := c.httpClient.Patch(ctx, "/v1/agents", map[string]interface{}{"data": items})
	if err != nil {
		return nil, fmt.Errorf("patching agents: %w", err)
	}

	list, err := decodeList[dixa.AgentOutcome](resp.Body)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

// Anonymize implements dixa.AgentsClient.Anonymize.
func (c *AgentsClient) Anonymize(ctx context.Context, agentID string) (*dixa.AnonymizationRequest, error) {
	path := "/v1/agents/" + agentID + "/anonymize"

	resp, err := c.httpClient.Patch(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("anonymizing agent: %w", err)
	}

	return decodeData[dixa.AnonymizationRequest](resp.Body)
}
