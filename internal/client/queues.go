package client

import (
	"context"
	"fmt"

	"github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

// QueuesClient implements dixa.QueuesClient.
type QueuesClient struct {
	httpClient *http.Client
}

// NewQueuesClient creates a new queues client.
func NewQueuesClient(httpClient *http.Client) *QueuesClient {
	return &QueuesClient{
		httpClient: httpClient,
	}
}

// Create implements dixa.QueuesClient.Create.
func (c *QueuesClient) Create(ctx context.Context, request *dixa.CreateQueueRequest) (*dixa.Queue, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/queues", request)
	if err != nil {
		return nil, fmt.Errorf("creating queue: %w", err)
	}

	return decodeData[dixa.Queue](resp.Body)
}

// Get implements dixa.QueuesClient.Get.
func (c *QueuesClient) Get(ctx context.Context, queueID string) (*dixa.Queue, error) {
	path := "/v1/queues/" + queueID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting queue: %w", err)
	}

	return decodeData[dixa.Queue](resp.Body)
}

// List implements dixa.QueuesClient.List.
func (c *QueuesClient) List(ctx context.Context) (*dixa.ListResponse[dixa.Queue], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/queues", nil)
	if err != nil {
		return nil, fmt.Errorf("listing queues: %w", err)
	}

	return decodeList[dixa.Queue](resp.Body)
}

// ListMembers implements dixa.QueuesClient.ListMembers.
func (c *QueuesClient) ListMembers(ctx context.Context, queueID string) (*dixa.ListResponse[dixa.QueueMember], error) {
	path := "/v1/queues/" + queueID + "/members"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing queue members: %w", err)
	}

	return decodeList[dixa.QueueMember](resp.Body)
}

// AssignAgents implements dixa.QueuesClient.AssignAgents.
func (c *QueuesClient) AssignAgents(ctx context.Context, queueID string, agentIDs []string) error {
	path := "/v1/queues/" + queueID + "/members"

	_, err := c.httpClient.Patch(ctx, path, agentIDs)
	if err != nil {
		return fmt.Errorf("assigning agents to queue: %w", err)
	}

	return nil
}

// RemoveAgents implements dixa.QueuesClient.RemoveAgents.
func (c *QueuesClient) RemoveAgents(ctx context.Context, queueID string, agentIDs []string) error {
	path := "/v1/queues/" + queueID + "/members"

	_, err := c.httpClient.Delete(ctx, path, agentIDs)
	if err != nil {
		return fmt.Errorf("removing agents from queue: %w", err)
	}

	return nil
}
