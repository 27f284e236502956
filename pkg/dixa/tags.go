package dixa

import (
	"context"
)

// TagState marks whether a tag can currently be applied.
type TagState string

// Tag states.
const (
	TagStateActive   TagState = "Active"
	TagStateInactive TagState = "Inactive"
)

// Tag represents a Dixa conversation tag.
type Tag struct {
	ID    string   `json:"id"              yaml:"id"`
	Name  string   `json:"name"            yaml:"name"`
	State TagState `json:"state,omitempty" yaml:"state,omitempty"`
	Color *string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// CreateTagRequest is the body for creating a tag.
type CreateTagRequest struct {
	Name  string `json:"name"            yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// TagsClient provides access to the Tags endpoints.
type TagsClient interface {
	Create(ctx context.Context, request *CreateTagRequest) (*Tag, error)
	Get(ctx context.Context, tagID string) (*Tag, error)
	List(ctx context.Context) (*ListResponse[Tag], error)
	Activate(ctx context.Context, tagID string) error
	Deactivate(ctx context.Context, tagID string) error
}
