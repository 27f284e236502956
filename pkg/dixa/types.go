package dixa

import (
	"time"
)

// ListMeta carries the cursor information returned by list endpoints. Next
// and Previous are opaque page keys consumed via the pageKey query parameter.
type ListMeta struct {
	Next     *string `json:"next,omitempty"     yaml:"next,omitempty"`
	Previous *string `json:"previous,omitempty" yaml:"previous,omitempty"`
}

// ListResponse represents the standard Dixa list envelope.
type ListResponse[T any] struct {
	Data []T       `json:"data"           yaml:"data"`
	Meta *ListMeta `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// CustomAttribute is a custom attribute definition together with the value
// set on a conversation or end user.
type CustomAttribute struct {
	ID         string      `json:"id"         yaml:"id"`
	Name       string      `json:"name"       yaml:"name"`
	Identifier string      `json:"identifier" yaml:"identifier"`
	Value      interface{} `json:"value"      yaml:"value"`
}

// CustomAttributes maps attribute identifiers to their new values. Values
// are strings or lists of strings, matching the API's patch payload.
type CustomAttributes map[string]interface{}

// AnonymizationRequestType names the entity kind targeted by an
// anonymization request.
type AnonymizationRequestType string

// Anonymization target kinds.
const (
	AnonymizationTargetConversation AnonymizationRequestType = "Conversation"
	AnonymizationTargetMessage      AnonymizationRequestType = "Message"
	AnonymizationTargetUser         AnonymizationRequestType = "User"
)

// AnonymizationRequest represents a pending or processed GDPR anonymization
// of a conversation, message, or user.
type AnonymizationRequest struct {
	Type           AnonymizationRequestType `json:"_type"                 yaml:"_type"`
	ID             string                   `json:"id"                    yaml:"id"`
	InitiatedAt    time.Time                `json:"initiatedAt"           yaml:"initiatedAt"`
	ProcessedAt    *time.Time               `json:"processedAt,omitempty" yaml:"processedAt,omitempty"`
	RequestedBy    string                   `json:"requestedBy"           yaml:"requestedBy"`
	TargetEntityID string                   `json:"targetEntityId"        yaml:"targetEntityId"`
}

// BulkActionOutcome reports the per-item result of a bulk create/update/patch
// call. Type is "Success" or "Failure"; Data is set on success, Message on
// failure.
type BulkActionOutcome[T any] struct {
	Type    string  `json:"_type"             yaml:"_type"`
	Data    *T      `json:"data,omitempty"    yaml:"data,omitempty"`
	Message *string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Succeeded reports whether the bulk item was applied.
func (o BulkActionOutcome[T]) Succeeded() bool {
	return o.Type == "Success"
}
