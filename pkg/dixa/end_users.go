package dixa

import (
	"context"
	"time"
)

// EndUser represents a Dixa end user (customer).
type EndUser struct {
	ID                     string     `json:"id"                               yaml:"id"`
	Email                  *string    `json:"email,omitempty"                  yaml:"email,omitempty"`
	PhoneNumber            *string    `json:"phoneNumber,omitempty"            yaml:"phoneNumber,omitempty"`
	DisplayName            *string    `json:"displayName,omitempty"            yaml:"displayName,omitempty"`
	FirstName              *string    `json:"firstName,omitempty"              yaml:"firstName,omitempty"`
	LastName               *string    `json:"lastName,omitempty"               yaml:"lastName,omitempty"`
	MiddleNames            []string   `json:"middleNames,omitempty"            yaml:"middleNames,omitempty"`
	AdditionalEmails       []string   `json:"additionalEmails,omitempty"       yaml:"additionalEmails,omitempty"`
	AdditionalPhoneNumbers []string   `json:"additionalPhoneNumbers,omitempty" yaml:"additionalPhoneNumbers,omitempty"`
	AvatarURL              *string    `json:"avatarUrl,omitempty"              yaml:"avatarUrl,omitempty"`
	ExternalID             *string    `json:"externalId,omitempty"             yaml:"externalId,omitempty"`
	CreatedAt              *time.Time `json:"createdAt,omitempty"              yaml:"createdAt,omitempty"`
	UpdatedAt              *time.Time `json:"updatedAt,omitempty"              yaml:"updatedAt,omitempty"`
}

// EndUserRequest is the body for creating, updating, or patching an end
// user. All fields are optional; omitted fields are left untouched on patch.
type EndUserRequest struct {
	Email                  string   `json:"email,omitempty"                  yaml:"email,omitempty"`
	PhoneNumber            string   `json:"phoneNumber,omitempty"            yaml:"phoneNumber,omitempty"`
	DisplayName            string   `json:"displayName,omitempty"            yaml:"displayName,omitempty"`
	FirstName              string   `json:"firstName,omitempty"              yaml:"firstName,omitempty"`
	LastName               string   `json:"lastName,omitempty"               yaml:"lastName,omitempty"`
	MiddleNames            []string `json:"middleNames,omitempty"            yaml:"middleNames,omitempty"`
	AdditionalEmails       []string `json:"additionalEmails,omitempty"       yaml:"additionalEmails,omitempty"`
	AdditionalPhoneNumbers []string `json:"additionalPhoneNumbers,omitempty" yaml:"additionalPhoneNumbers,omitempty"`
	AvatarURL              string   `json:"avatarUrl,omitempty"              yaml:"avatarUrl,omitempty"`
	ExternalID             string   `json:"externalId,omitempty"             yaml:"externalId,omitempty"`
}

// EndUserBulkItem is one element of a bulk update/patch body; ID selects the
// end user the remaining fields apply to.
type EndUserBulkItem struct {
	ID string `json:"id" yaml:"id"`
	EndUserRequest
}

// EndUserOutcome is the per-item result of a bulk end-user call.
type EndUserOutcome = BulkActionOutcome[EndUser]

// EndUsersClient provides access to the End Users endpoints.
type EndUsersClient interface {
	Anonymize(ctx context.Context, endUserID string) (*AnonymizationRequest, error)
	Create(ctx context.Context, request *EndUserRequest) (*EndUser, error)
	CreateBulk(ctx context.Context, requests []EndUserRequest) ([]EndUserOutcome, error)
	Get(ctx context.Context, endUserID string) (*EndUser, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[EndUser], error)
	ListConversations(ctx context.Context, endUserID string) (*ListResponse[Conversation], error)
	Patch(ctx context.Context, endUserID string, request *EndUserRequest) (*EndUser, error)
	PatchBulk(ctx context.Context, items []EndUserBulkItem) ([]EndUserOutcome, error)
	PatchCustomAttributes(ctx context.Context, endUserID string, attributes CustomAttributes) ([]CustomAttribute, error)
	Update(ctx context.Context, endUserID string, request *EndUserRequest) (*EndUser, error)
	UpdateBulk(ctx context.Context, items []EndUserBulkItem) ([]EndUserOutcome, error)
}
