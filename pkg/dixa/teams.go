package dixa

import (
	"context"
)

// Team represents a Dixa team.
type Team struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CreateTeamRequest is the body for creating a team.
type CreateTeamRequest struct {
	Name string `json:"name" yaml:"name"`
}

// TeamMember is an agent's membership entry in a team.
type TeamMember struct {
	ID          string  `json:"id"                    yaml:"id"`
	DisplayName string  `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Email       string  `json:"email,omitempty"       yaml:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty" yaml:"phoneNumber,omitempty"`
}

// TeamsClient provides access to the Teams endpoints.
type TeamsClient interface {
	Create(ctx context.Context, request *CreateTeamRequest) (*Team, error)
	Delete(ctx context.Context, teamID string) error
	Get(ctx context.Context, teamID string) (*Team, error)
	List(ctx context.Context) (*ListResponse[Team], error)
	ListMembers(ctx context.Context, teamID string) (*ListResponse[TeamMember], error)
	AddMembers(ctx context.Context, teamID string, agentIDs []string) error
	RemoveMembers(ctx context.Context, teamID string, agentIDs []string) error
	ListPresence(ctx context.Context, teamID string) (*ListResponse[AgentPresence], error)
}
