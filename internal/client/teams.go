package client

import (
	"context"
	"fmt"

	"github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

// TeamsClient implements dixa.TeamsClient.
type TeamsClient struct {
	httpClient *http.Client
}

// NewTeamsClient creates a new teams client.
func NewTeamsClient(httpClient *http.Client) *TeamsClient {
	return &TeamsClient{
		httpClient: httpClient,
	}
}

// Create implements dixa.TeamsClient.Create.
func (c *TeamsClient) Create(ctx context.Context, request *dixa.CreateTeamRequest) (*dixa.Team, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/teams", request)
	if err != nil {
		return nil, fmt.Errorf("creating team: %w", err)
	}

	return decodeData[dixa.Team](resp.Body)
}

// Delete implements dixa.TeamsClient.Delete.
func (c *TeamsClient) Delete(ctx context.Context, teamID string) error {
	path := "/v1/teams/" + teamID

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}

	return nil
}

// Get implements dixa.TeamsClient.Get.
func (c *TeamsClient) Get(ctx context.Context, teamID string) (*dixa.Team, error) {
	path := "/v1/teams/" + teamID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting team: %w", err)
	}

	return decodeData[dixa.Team](resp.Body)
}

// List implements dixa.TeamsClient.List.
func (c *TeamsClient) List(ctx context.Context) (*dixa.ListResponse[dixa.Team], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/teams", nil)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}

	return decodeList[dixa.Team](resp.Body)
}

// ListMembers implements dixa.TeamsClient.ListMembers.
func (c *TeamsClient) ListMembers(ctx context.Context, teamID string) (*dixa.ListResponse[dixa.TeamMember], error) {
	path := "/v1/teams/" + teamID + "/agents"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}

	return decodeList[dixa.TeamMember](resp.Body)
}

// AddMembers implements dixa.TeamsClient.AddMembers.
func (c *TeamsClient) AddMembers(ctx context.Context, teamID string, agentIDs []string) error {
	path := "/v1/teams/" + teamID + "/agents"

	_, err := c.httpClient.Patch(ctx, path, agentIDs)
	if err != nil {
		return fmt.Errorf("adding team members: %w", err)
	}

	return nil
}

// RemoveMembers implements dixa.TeamsClient.RemoveMembers.
func (c *TeamsClient) RemoveMembers(ctx context.Context, teamID string, agentIDs []string) error {
	path := "/v1/teams/" + teamID + "/agents"

	_, err := c.httpClient.Delete(ctx, path, agentIDs)
	if err != nil {
		return fmt.Errorf("removing team members: %w", err)
	}

	return nil
}

// ListPresence implements dixa.TeamsClient.ListPresence.
func (c *TeamsClient) ListPresence(ctx context.Context, teamID string) (*dixa.ListResponse[dixa.AgentPresence], error) {
	path := "/v1/teams/" + teamID + "/presence"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing team presence: %w", err)
	}

	return decodeList[dixa.AgentPresence](resp.Body)
}
