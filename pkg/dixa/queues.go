package dixa

import (
	"context"
)

// OfferingAlgorithm names a queue's conversation offering strategy.
type OfferingAlgorithm string

// Known offering algorithms.
const (
	OfferingAllAtOnce        OfferingAlgorithm = "AllAtOnce"
	OfferingOneAtATimeRandom OfferingAlgorithm = "OneAtATimeRandom"
	OfferingLongestIdle      OfferingAlgorithm = "AgentPriorityLongestIdle"
)

// Queue represents a Dixa queue.
type Queue struct {
	ID                string             `json:"id"                          yaml:"id"`
	Name              string             `json:"name"                        yaml:"name"`
	IsDefault         bool               `json:"isDefault,omitempty"         yaml:"isDefault,omitempty"`
	OfferingAlgorithm *OfferingAlgorithm `json:"offeringAlgorithm,omitempty" yaml:"offeringAlgorithm,omitempty"`
	Priority          *int               `json:"priority,omitempty"          yaml:"priority,omitempty"`
}

// CreateQueueRequest is the body for creating a queue.
type CreateQueueRequest struct {
	Name              string             `json:"name"                        yaml:"name"`
	CallFunctionality bool               `json:"callFunctionality,omitempty" yaml:"callFunctionality,omitempty"`
	IsDefault         bool               `json:"isDefault,omitempty"         yaml:"isDefault,omitempty"`
	OfferingAlgorithm *OfferingAlgorithm `json:"offeringAlgorithm,omitempty" yaml:"offeringAlgorithm,omitempty"`
	Priority          *int               `json:"priority,omitempty"          yaml:"priority,omitempty"`
}

// QueueMember is an agent's membership entry in a queue.
type QueueMember struct {
	AgentID string `json:"agentId"        yaml:"agentId"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
}

// QueuesClient provides access to the Queues endpoints.
type QueuesClient interface {
	Create(ctx context.Context, request *CreateQueueRequest) (*Queue, error)
	Get(ctx context.Context, queueID string) (*Queue, error)
	List(ctx context.Context) (*ListResponse[Queue], error)
	ListMembers(ctx context.Context, queueID string) (*ListResponse[QueueMember], error)
	AssignAgents(ctx context.Context, queueID string, agentIDs []string) error
	RemoveAgents(ctx context.Context, queueID string, agentIDs []string) error
}
