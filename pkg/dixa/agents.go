package dixa

import (
	"context"
	"time"
)

// Agent represents a Dixa agent.
type Agent struct {
	ID                     string   `json:"id"                               yaml:"id"`
	Email                  string   `json:"email,omitempty"                  yaml:"email,omitempty"`
	DisplayName            string   `json:"displayName,omitempty"            yaml:"displayName,omitempty"`
	FirstName              *string  `json:"firstName,omitempty"              yaml:"firstName,omitempty"`
	LastName               *string  `json:"lastName,omitempty"               yaml:"lastName,omitempty"`
	MiddleNames            []string `json:"middleNames,omitempty"            yaml:"middleNames,omitempty"`
	PhoneNumber            *string  `json:"phoneNumber,omitempty"            yaml:"phoneNumber,omitempty"`
	AdditionalEmails       []string `json:"additionalEmails,omitempty"       yaml:"additionalEmails,omitempty"`
	AdditionalPhoneNumbers []string `json:"additionalPhoneNumbers,omitempty" yaml:"additionalPhoneNumbers,omitempty"`
	AvatarURL              *string  `json:"avatarUrl,omitempty"              yaml:"avatarUrl,omitempty"`
	Roles                  []string `json:"roles,omitempty"                  yaml:"roles,omitempty"`
}

// AgentRequest is the body for creating, updating, or patching an agent.
type AgentRequest struct {
	Email                  string   `json:"email,omitempty"                  yaml:"email,omitempty"`
	DisplayName            string   `json:"displayName,omitempty"            yaml:"displayName,omitempty"`
	FirstName              string   `json:"firstName,omitempty"              yaml:"firstName,omitempty"`
	LastName               string   `json:"lastName,omitempty"               yaml:"lastName,omitempty"`
	MiddleNames            []string `json:"middleNames,omitempty"            yaml:"middleNames,omitempty"`
	PhoneNumber            string   `json:"phoneNumber,omitempty"            yaml:"phoneNumber,omitempty"`
	AdditionalEmails       []string `json:"additionalEmails,omitempty"       yaml:"additionalEmails,omitempty"`
	AdditionalPhoneNumbers []string `json:"additionalPhoneNumbers,omitempty" yaml:"additionalPhoneNumbers,omitempty"`
	AvatarURL              string   `json:"avatarUrl,omitempty"              yaml:"avatarUrl,omitempty"`
}

// AgentBulkItem is one element of a bulk agent update/patch body.
type AgentBulkItem struct {
	ID string `json:"id" yaml:"id"`
	AgentRequest
}

// AgentOutcome is the per-item result of a bulk agent call.
type AgentOutcome = BulkActionOutcome[Agent]

// PresenceStatus is an agent's working state.
type PresenceStatus string

// Presence states.
const (
	PresenceAway    PresenceStatus = "Away"
	PresenceWorking PresenceStatus = "Working"
)

// AgentPresence is a point-in-time snapshot of an agent's availability.
type AgentPresence struct {
	AgentID          string         `json:"agentId"                    yaml:"agentId"`
	PresenceStatus   PresenceStatus `json:"presenceStatus,omitempty"   yaml:"presenceStatus,omitempty"`
	ConnectionStatus string         `json:"connectionStatus,omitempty" yaml:"connectionStatus,omitempty"`
	ActiveChannels   []Channel      `json:"activeChannels,omitempty"   yaml:"activeChannels,omitempty"`
	LastSeenAt       *time.Time     `json:"lastSeenAt,omitempty"       yaml:"lastSeenAt,omitempty"`
	RequestTime      *time.Time     `json:"requestTime,omitempty"      yaml:"requestTime,omitempty"`
}

// AgentsClient provides access to the Agents endpoints.
type AgentsClient interface {
	Anonymize(ctx context.Context, agentID string) (*AnonymizationRequest, error)
	Create(ctx context.Context, request *AgentRequest) (*Agent, error)
	CreateBulk(ctx context.Context, requests []AgentRequest) ([]AgentOutcome, error)
	Get(ctx context.Context, agentID string) (*Agent, error)
	GetPresence(ctx context.Context, agentID string) (*AgentPresence, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[Agent], error)
	ListPresence(ctx context.Context) (*ListResponse[AgentPresence], error)
	Patch(ctx context.Context, agentID string, request *AgentRequest) (*Agent, error)
	PatchBulk(ctx context.Context, items []AgentBulkItem) ([]AgentOutcome, error)
	Update(ctx context.Context, agentID string, request *AgentRequest) (*Agent, error)
	UpdateBulk(ctx context.Context, items []AgentBulkItem) ([]AgentOutcome, error)
}
