package dixa

import (
	"context"
	"time"
)

// Channel identifies the contact channel a conversation lives on.
type Channel string

// Known channels.
const (
	ChannelCallback          Channel = "Callback"
	ChannelChat              Channel = "Chat"
	ChannelContactForm       Channel = "ContactForm"
	ChannelEmail             Channel = "Email"
	ChannelFacebookMessenger Channel = "FacebookMessenger"
	ChannelSms               Channel = "Sms"
	ChannelTelephony         Channel = "Telephony"
	ChannelWhatsApp          Channel = "WhatsApp"
)

// Direction identifies who initiated a message or call.
type Direction string

// Message directions.
const (
	DirectionInbound  Direction = "Inbound"
	DirectionOutbound Direction = "Outbound"
)

// Conversation represents a Dixa conversation. IDs are numeric and unique
// per organization.
type Conversation struct {
	ID              int64      `json:"id"                        yaml:"id"`
	RequesterID     string     `json:"requesterId,omitempty"     yaml:"requesterId,omitempty"`
	Channel         Channel    `json:"channel,omitempty"         yaml:"channel,omitempty"`
	Direction       *Direction `json:"direction,omitempty"       yaml:"direction,omitempty"`
	State           string     `json:"state,omitempty"           yaml:"state,omitempty"`
	Status          string     `json:"status,omitempty"          yaml:"status,omitempty"`
	Subject         *string    `json:"subject,omitempty"         yaml:"subject,omitempty"`
	QueueID         *string    `json:"queueId,omitempty"         yaml:"queueId,omitempty"`
	AssignedAgentID *string    `json:"assignedAgentId,omitempty" yaml:"assignedAgentId,omitempty"`
	Language        *string    `json:"language,omitempty"        yaml:"language,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"       yaml:"createdAt,omitempty"`
	StateUpdatedAt  *time.Time `json:"stateUpdatedAt,omitempty"  yaml:"stateUpdatedAt,omitempty"`
}

// ContentType labels message content as plain text or HTML.
type ContentType string

// Message content types.
const (
	ContentTypeText ContentType = "Text"
	ContentTypeHTML ContentType = "Html"
)

// Content is the body of a message.
type Content struct {
	Type  ContentType `json:"_type" yaml:"_type"`
	Value string      `json:"value" yaml:"value"`
}

// File is an attachment reference.
type File struct {
	URL        string `json:"url"        yaml:"url"`
	PrettyName string `json:"prettyName" yaml:"prettyName"`
}

// Message represents a single message within a conversation.
type Message struct {
	ID          string     `json:"id"                    yaml:"id"`
	AuthorID    string     `json:"authorId,omitempty"    yaml:"authorId,omitempty"`
	Direction   Direction  `json:"direction,omitempty"   yaml:"direction,omitempty"`
	Text        *string    `json:"text,omitempty"        yaml:"text,omitempty"`
	ExternalID  *string    `json:"externalId,omitempty"  yaml:"externalId,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	Attachments []File     `json:"attachments,omitempty" yaml:"attachments,omitempty"`
	Content     *Content   `json:"content,omitempty"     yaml:"content,omitempty"`
}

// InternalNote is an agent-only note on a conversation.
type InternalNote struct {
	ID        string     `json:"id,omitempty"        yaml:"id,omitempty"`
	Message   string     `json:"message"             yaml:"message"`
	AgentID   string     `json:"agentId,omitempty"   yaml:"agentId,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// ActivityLogAuthor identifies who caused an activity log entry.
type ActivityLogAuthor struct {
	ID          string `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string `json:"name,omitempty"        yaml:"name,omitempty"`
	Email       string `json:"email,omitempty"       yaml:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty" yaml:"phoneNumber,omitempty"`
}

// ActivityLog is one entry of a conversation's audit trail.
type ActivityLog struct {
	ID                string                 `json:"id"                          yaml:"id"`
	ConversationID    int64                  `json:"conversationId"              yaml:"conversationId"`
	ActivityType      string                 `json:"activityType"                yaml:"activityType"`
	ActivityTimestamp *time.Time             `json:"activityTimestamp,omitempty" yaml:"activityTimestamp,omitempty"`
	Author            *ActivityLogAuthor     `json:"author,omitempty"            yaml:"author,omitempty"`
	Attributes        map[string]interface{} `json:"attributes,omitempty"        yaml:"attributes,omitempty"`
}

// ConversationRating is a CSAT rating left on a conversation.
type ConversationRating struct {
	AgentID       *string `json:"agentId,omitempty"       yaml:"agentId,omitempty"`
	RatingScore   int     `json:"ratingScore"             yaml:"ratingScore"`
	RatingComment *string `json:"ratingComment,omitempty" yaml:"ratingComment,omitempty"`
	RatingStatus  string  `json:"ratingStatus,omitempty"  yaml:"ratingStatus,omitempty"`
	RatingType    string  `json:"ratingType,omitempty"    yaml:"ratingType,omitempty"`
}

// ConversationFlow describes an automation flow available on a channel.
type ConversationFlow struct {
	ID      string  `json:"id"                yaml:"id"`
	Name    string  `json:"name"              yaml:"name"`
	Channel Channel `json:"channel,omitempty" yaml:"channel,omitempty"`
}

// ConversationSearchHit is one match from the conversation search endpoint.
type ConversationSearchHit struct {
	ID         int64               `json:"id"                   yaml:"id"`
	Highlights map[string][]string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// BrowserInfo carries requester browser metadata for chat conversations.
type BrowserInfo struct {
	BrowserName     string `json:"browserName,omitempty"     yaml:"browserName,omitempty"`
	BrowserVersion  string `json:"browserVersion,omitempty"  yaml:"browserVersion,omitempty"`
	IPAddress       string `json:"ipAddress,omitempty"       yaml:"ipAddress,omitempty"`
	OriginatingURL  string `json:"originatingUrl,omitempty"  yaml:"originatingUrl,omitempty"`
	UserAgent       string `json:"userAgent,omitempty"       yaml:"userAgent,omitempty"`
}

// AddInternalNoteRequest is the body for adding an internal note.
type AddInternalNoteRequest struct {
	Message   string     `json:"message"             yaml:"message"`
	AgentID   string     `json:"agentId,omitempty"   yaml:"agentId,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// AddMessageRequest is the body for adding an inbound or outbound message.
// Type selects the variant; AgentID is required for outbound messages.
type AddMessageRequest struct {
	Type             Direction `json:"_type,omitempty"            yaml:"_type,omitempty"`
	AgentID          string    `json:"agentId,omitempty"          yaml:"agentId,omitempty"`
	Content          *Content  `json:"content"                    yaml:"content"`
	Attachments      []File    `json:"attachments,omitempty"      yaml:"attachments,omitempty"`
	BCC              []string  `json:"bcc,omitempty"              yaml:"bcc,omitempty"`
	CC               []string  `json:"cc,omitempty"               yaml:"cc,omitempty"`
	ExternalID       string    `json:"externalId,omitempty"       yaml:"externalId,omitempty"`
	IntegrationEmail string    `json:"integrationEmail,omitempty" yaml:"integrationEmail,omitempty"`
}

// ConversationType selects the variant of a conversation create request.
type ConversationType string

// Conversation create variants.
const (
	ConversationTypeCallback    ConversationType = "Callback"
	ConversationTypeChat        ConversationType = "Chat"
	ConversationTypeContactForm ConversationType = "ContactForm"
	ConversationTypeEmail       ConversationType = "Email"
	ConversationTypeSms         ConversationType = "Sms"
)

// CreateConversationRequest is the body for creating a conversation. Type
// selects the variant; the remaining fields apply per the variant's
// documented schema (e.g. EmailIntegrationID for Email/ContactForm,
// ContactEndpointID for Callback/Sms, WidgetID for Chat).
type CreateConversationRequest struct {
	Type               ConversationType   `json:"_type"                        yaml:"_type"`
	RequesterID        string             `json:"requesterId"                  yaml:"requesterId"`
	EmailIntegrationID string             `json:"emailIntegrationId,omitempty" yaml:"emailIntegrationId,omitempty"`
	ContactEndpointID  string             `json:"contactEndpointId,omitempty"  yaml:"contactEndpointId,omitempty"`
	QueueID            string             `json:"queueId,omitempty"            yaml:"queueId,omitempty"`
	WidgetID           string             `json:"widgetId,omitempty"           yaml:"widgetId,omitempty"`
	Subject            string             `json:"subject,omitempty"            yaml:"subject,omitempty"`
	Language           *string            `json:"language,omitempty"           yaml:"language,omitempty"`
	Direction          *Direction         `json:"direction,omitempty"          yaml:"direction,omitempty"`
	BrowserInfo        *BrowserInfo       `json:"browserInfo,omitempty"        yaml:"browserInfo,omitempty"`
	Message            *AddMessageRequest `json:"message,omitempty"            yaml:"message,omitempty"`
}

// ClaimConversationRequest is the body for claiming a conversation.
type ClaimConversationRequest struct {
	AgentID string `json:"agentId"         yaml:"agentId"`
	Force   bool   `json:"force,omitempty" yaml:"force,omitempty"`
}

// CloseConversationRequest is the body for closing a conversation.
type CloseConversationRequest struct {
	UserID string `json:"userId,omitempty" yaml:"userId,omitempty"`
}

// ReopenConversationRequest is the body for reopening a conversation.
type ReopenConversationRequest struct {
	UserID string `json:"userId,omitempty" yaml:"userId,omitempty"`
}

// TransferConversationRequest is the body for transferring a conversation to
// another queue.
type TransferConversationRequest struct {
	QueueID string `json:"queueId"          yaml:"queueId"`
	UserID  string `json:"userId,omitempty" yaml:"userId,omitempty"`
}

// SearchConversationsQuery holds the conversation search parameters.
type SearchConversationsQuery struct {
	Query      string
	ExactMatch *bool
}

// ConversationsClient provides access to the Conversations endpoints.
type ConversationsClient interface {
	AddInternalNote(ctx context.Context, conversationID string, request *AddInternalNoteRequest) (*InternalNote, error)
	AddInternalNotes(ctx context.Context, conversationID string, requests []AddInternalNoteRequest) ([]InternalNote, error)
	AddMessage(ctx context.Context, conversationID string, request *AddMessageRequest) (*Message, error)
	Anonymize(ctx context.Context, conversationID string) (*AnonymizationRequest, error)
	AnonymizeMessage(ctx context.Context, conversationID, messageID string) (*AnonymizationRequest, error)
	Claim(ctx context.Context, conversationID string, request *ClaimConversationRequest) error
	Close(ctx context.Context, conversationID string, request *CloseConversationRequest) error
	Create(ctx context.Context, request *CreateConversationRequest) (*Conversation, error)
	Get(ctx context.Context, conversationID string) (*Conversation, error)
	ListActivityLogs(ctx context.Context, conversationID string) (*ListResponse[ActivityLog], error)
	ListFlows(ctx context.Context, channel Channel) (*ListResponse[ConversationFlow], error)
	ListInternalNotes(ctx context.Context, conversationID string) (*ListResponse[InternalNote], error)
	ListLinkedConversations(ctx context.Context, conversationID string) (*ListResponse[Conversation], error)
	ListMessages(ctx context.Context, conversationID string) (*ListResponse[Message], error)
	ListOrganizationActivityLogs(ctx context.Context, params *QueryParams) (*ListResponse[ActivityLog], error)
	ListRatings(ctx context.Context, conversationID string) (*ListResponse[ConversationRating], error)
	ListTags(ctx context.Context, conversationID string) (*ListResponse[Tag], error)
	PatchCustomAttributes(ctx context.Context, conversationID string, attributes CustomAttributes) ([]CustomAttribute, error)
	Reopen(ctx context.Context, conversationID string, request *ReopenConversationRequest) error
	Search(ctx context.Context, query *SearchConversationsQuery) (*ListResponse[ConversationSearchHit], error)
	Tag(ctx context.Context, conversationID, tagID string) error
	Untag(ctx context.Context, conversationID, tagID string) error
	Transfer(ctx context.Context, conversationID string, request *TransferConversationRequest) error
}
