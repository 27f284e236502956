package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

// ConversationsClient implements dixa.ConversationsClient.
type ConversationsClient struct {
	httpClient *http.Client
}

// NewConversationsClient creates a new conversations client.
func NewConversationsClient(httpClient *http.Client) *ConversationsClient {
	return &ConversationsClient{
		httpClient: httpClient,
	}
}

// Create implements dixa.ConversationsClient.Create.
func (c *ConversationsClient) Create(ctx context.Context, request *dixa.CreateConversationRequest) (*dixa.Conversation, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/conversations", request)
	if err != nil {
		return nil, fmt.Errorf("creating conversation: %w", err)
	}

	return decodeData[dixa.Conversation](resp.Body)
}

// Get implements dixa.ConversationsClient.Get.
func (c *ConversationsClient) Get(ctx context.Context, conversationID string) (*dixa.Conversation, error) {
	path := "/v1/conversations/" + conversationID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting conversation: %w", err)
	}

	return decodeData[dixa.Conversation](resp.Body)
}

// AddInternalNote implements dixa.ConversationsClient.AddInternalNote.
func (c *ConversationsClient) AddInternalNote(ctx context.Context, conversationID string, request *dixa.AddInternalNoteRequest) (*dixa.InternalNote, error) {
	path := "/v1/conversations/" + conversationID + "/notes"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("adding internal note: %w", err)
	}

	return decodeData[dixa.InternalNote](resp.Body)
}

// AddInternalNotes implements dixa.ConversationsClient.AddInternalNotes.
func (c *ConversationsClient) AddInternalNotes(ctx context.Context, conversationID string, requests []dixa.AddInternalNoteRequest) ([]dixa.InternalNote, error) {
	path := "/v1/conversations/" + conversationID + "/notes/bulk"

	resp, err := c.httpClient.Post(ctx, path, map[string]interface{}{"data": requests})
	if err != nil {
		return nil, fmt.Errorf("adding internal notes: %w", err)
	}

	list, err := decodeList[dixa.InternalNote](resp.Body)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

// AddMessage implements dixa.ConversationsClient.AddMessage.
func (c *ConversationsClient) AddMessage(ctx context.Context, conversationID string, request *dixa.AddMessageRequest) (*dixa.Message, error) {
	path := "/v1/conversations/" + conversationID + "/messages"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("adding message: %w", err)
	}

	return decodeData[dixa.Message](resp.Body)
}

// Anonymize implements dixa.ConversationsClient.Anonymize.
func (c *ConversationsClient) Anonymize(ctx context.Context, conversationID string) (*dixa.AnonymizationRequest, error) {
	path := "/v1/conversations/" + conversationID + "/anonymize"

	resp, err := c.httpClient.Patch(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("anonymizing conversation: %w", err)
	}

	return decodeData[dixa.AnonymizationRequest](resp.Body)
}

// AnonymizeMessage implements dixa.ConversationsClient.AnonymizeMessage.
func (c *ConversationsClient) AnonymizeMessage(ctx context.Context, conversationID, messageID string) (*dixa.AnonymizationRequest, error) {
	path := "/v1/conversations/" + conversationID + "/messages/" + messageID + "/anonymize"

	resp, err := c.httpClient.Patch(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("anonymizing message: %w", err)
	}

	return decodeData[dixa.AnonymizationRequest](resp.Body)
}

// Claim implements dixa.ConversationsClient.Claim.
func (c *ConversationsClient) Claim(ctx context.Context, conversationID string, request *dixa.ClaimConversationRequest) error {
	path := "/v1/conversations/" + conversationID + "/claim"

	_, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return fmt.Errorf("claiming conversation: %w", err)
	}

	return nil
}

// Close implements dixa.ConversationsClient.Close.
func (c *ConversationsClient) Close(ctx context.Context, conversationID string, request *dixa.CloseConversationRequest) error {
	path := "/v1/conversations/" + conversationID + "/close"

	_, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return fmt.Errorf("closing conversation: %w", err)
	}

	return nil
}

// Reopen implements dixa.ConversationsClient.Reopen.
func (c *ConversationsClient) Reopen(ctx context.Context, conversationID string, request *dixa.ReopenConversationRequest) error {
	path := "/v1/conversations/" + conversationID + "/reopen"

	_, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return fmt.Errorf("reopening conversation: %w", err)
	}

	return nil
}

// Transfer implements dixa.ConversationsClient.Transfer.
func (c *ConversationsClient) Transfer(ctx context.Context, conversationID string, request *dixa.TransferConversationRequest) error {
	path := "/v1/conversations/" + conversationID + "/transfer/queue"

	_, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return fmt.Errorf("transferring conversation: %w", err)
	}

	return nil
}

// ListActivityLogs implements dixa.ConversationsClient.ListActivityLogs.
func (c *ConversationsClient) ListActivityLogs(ctx context.Context, conversationID string) (*dixa.ListResponse[dixa.ActivityLog], error) {
	path := "/v1/conversations/" + conversationID + "/activitylog"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing conversation activity logs: %w", err)
	}

	return decodeList[dixa.ActivityLog](resp.Body)
}

// ListOrganizationActivityLogs implements dixa.ConversationsClient.ListOrganizationActivityLogs.
func (c *ConversationsClient) ListOrganizationActivityLogs(ctx context.Context, params *dixa.QueryParams) (*dixa.ListResponse[dixa.ActivityLog], error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/v1/conversations/activitylog", queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing activity logs: %w", err)
	}

	return decodeList[dixa.ActivityLog](resp.Body)
}

// ListFlows implements dixa.ConversationsClient.ListFlows.
func (c *ConversationsClient) ListFlows(ctx context.Context, channel dixa.Channel) (*dixa.ListResponse[dixa.ConversationFlow], error) {
	queryParams := url.Values{}
	if channel != "" {
		queryParams.Set("channel", string(channel))
	}

	resp, err := c.httpClient.Get(ctx, "/v1/conversations/flows", queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing conversation flows: %w", err)
	}

	return decodeList[dixa.ConversationFlow](resp.Body)
}

// ListInternalNotes implements dixa.ConversationsClient.ListInternalNotes.
func (c *ConversationsClient) ListInternalNotes(ctx context.Context, conversationID string) (*dixa.ListResponse[dixa.InternalNote], error) {
	path := "/v1/conversations/" + conversationID + "/notes"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing internal notes: %w", err)
	}

	return decodeList[dixa.InternalNote](resp.Body)
}

// ListLinkedConversations implements dixa.ConversationsClient.ListLinkedConversations.
func (c *ConversationsClient) ListLinkedConversations(ctx context.Context, conversationID string) (*dixa.ListResponse[dixa.Conversation], error) {
	path := "/v1/conversations/" + conversationID + "/linked"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing linked conversations: %w", err)
	}

	return decodeList[dixa.Conversation](resp.Body)
}

// ListMessages implements dixa.ConversationsClient.ListMessages.
func (c *ConversationsClient) ListMessages(ctx context.Context, conversationID string) (*dixa.ListResponse[dixa.Message], error) {
	path := "/v1/conversations/" + conversationID + "/messages"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	return decodeList[dixa.Message](resp.Body)
}

// ListRatings implements dixa.ConversationsClient.ListRatings.
func (c *ConversationsClient) ListRatings(ctx context.Context, conversationID string) (*dixa.ListResponse[dixa.ConversationRating], error) {
	path := "/v1/conversations/" + conversationID + "/rating"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing conversation ratings: %w", err)
	}

	return decodeList[dixa.ConversationRating](resp.Body)
}

// ListTags implements dixa.ConversationsClient.ListTags.
func (c *ConversationsClient) ListTags(ctx context.Context, conversationID string) (*dixa.ListResponse[dixa.Tag], error) {
	path := "/v1/conversations/" + conversationID + "/tags"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing conversation tags: %w", err)
	}

	return decodeList[dixa.Tag](resp.Body)
}

// PatchCustomAttributes implements dixa.ConversationsClient.PatchCustomAttributes.
func (c *ConversationsClient) PatchCustomAttributes(ctx context.Context, conversationID string, attributes dixa.CustomAttributes) ([]dixa.CustomAttribute, error) {
	path := "/v1/conversations/" + conversationID + "/custom-attributes"

	resp, err := c.httpClient.Patch(ctx, path, attributes)
	if err != nil {
		return nil, fmt.Errorf("updating custom attributes: %w", err)
	}

	list, err := decodeList[dixa.CustomAttribute](resp.Body)
	if err != nil {
		return nil, err
	}

	return list.Data, nil
}

// Search implements dixa.ConversationsClient.Search.
func (c *ConversationsClient) Search(ctx context.Context, query *dixa.SearchConversationsQuery) (*dixa.ListResponse[dixa.ConversationSearchHit], error) {
	queryParams := url.Values{}

	if query != nil {
		queryParams.Set("query", query.Query)

		if query.ExactMatch != nil {
			queryParams.Set("exactMatch", strconv.FormatBool(*query.ExactMatch))
		}
	}

	resp, err := c.httpClient.Get(ctx, "/v1/search/conversations", queryParams)
	if err != nil {
		return nil, fmt.Errorf("searching conversations: %w", err)
	}

	return decodeList[dixa.ConversationSearchHit](resp.Body)
}

// Tag implements dixa.ConversationsClient.Tag.
func (c *ConversationsClient) Tag(ctx context.Context, conversationID, tagID string) error {
	path := "/v1/conversations/" + conversationID + "/tags/" + tagID

	_, err := c.httpClient.Put(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("tagging conversation: %w", err)
	}

	return nil
}

// Untag implements dixa.ConversationsClient.Untag.
func (c *ConversationsClient) Untag(ctx context.Context, conversationID, tagID string) error {
	path := "/v1/conversations/" + conversationID + "/tags/" + tagID

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("untagging conversation: %w", err)
	}

	return nil
}
