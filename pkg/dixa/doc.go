// Package dixa provides types, interfaces, and helpers for working with the
// Dixa customer-support REST API (v1).
//
// # Overview
//
// The dixa package defines the domain types (e.g., Conversation, EndUser,
// Agent, Queue, Tag, WebhookSubscription) and the interfaces for
// resource-oriented clients (e.g., ConversationsClient, EndUsersClient). A
// concrete implementation of these clients is provided by the dixaclient
// package, which wires configuration, transport, and authentication. Most
// consumers should import dixaclient to construct a client and then interact
// with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/helplane-io/dixa-client/pkg/dixa"
//	  "github.com/helplane-io/dixa-client/pkg/dixaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := dixaclient.NewWithAPIKey("tok_123")
//	  if err != nil { log.Fatal(err) }
//
//	  conv, err := cli.Conversations().Get(ctx, "42")
//	  if err != nil { log.Fatal(err) }
//	  _ = conv
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (pageLimit, pageKey, and
// endpoint-specific filters). List endpoints return ListResponse values whose
// Meta carries opaque page-key cursors; PageIterator and FetchAllPages walk
// them for you:
//
//	it := dixa.NewPageIterator[dixa.Message](ctx, lister, "/v1/conversations/42/messages", nil)
//	for it.HasNext() {
//	  msg, err := it.Next()
//	  if err != nil { break }
//	  _ = msg
//	}
//
// # Errors
//
// Failed API calls are represented by APIError, which carries the HTTP status
// code, the parsed server message, and the raw response body. Helpers such as
// IsNotFound, IsUnauthorized, and IsRateLimited make it easy to branch on
// common cases. Transport failures (connection errors, timeouts) are returned
// as ordinary wrapped errors and are never APIError values.
package dixa
