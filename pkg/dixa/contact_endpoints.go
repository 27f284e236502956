package dixa

import (
	"context"
)

// ContactEndpointType distinguishes email addresses from phone numbers.
type ContactEndpointType string

// Contact endpoint kinds.
const (
	ContactEndpointEmail     ContactEndpointType = "EmailEndpoint"
	ContactEndpointTelephony ContactEndpointType = "TelephonyEndpoint"
)

// ContactEndpoint is an address (email or phone number) the organization can
// be contacted on.
type ContactEndpoint struct {
	Type    ContactEndpointType `json:"_type"          yaml:"_type"`
	Address string              `json:"address"        yaml:"address"`
	Name    *string             `json:"name,omitempty" yaml:"name,omitempty"`
}

// ContactEndpointsClient provides access to the Contact Endpoints endpoints.
type ContactEndpointsClient interface {
	Get(ctx context.Context, contactEndpointID string) (*ContactEndpoint, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[ContactEndpoint], error)
}
