package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/helplane-io/dixa-client/pkg/dixa"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewConversationsCommand creates the conversations command group.
func NewConversationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conversations",
		Aliases: []string{"conversation", "convs"},
		Short:   "Manage conversations",
		Long:    "Get, search, and work with Dixa conversations",
	}

	cmd.AddCommand(newConversationsGetCommand())
	cmd.AddCommand(newConversationsSearchCommand())
	cmd.AddCommand(newConversationsMessagesCommand())
	cmd.AddCommand(newConversationsNotesCommand())
	cmd.AddCommand(newConversationsClaimCommand())
	cmd.AddCommand(newConversationsCloseCommand())
	cmd.AddCommand(newConversationsReopenCommand())
	cmd.AddCommand(newConversationsTransferCommand())
	cmd.AddCommand(newConversationsTagCommand())
	cmd.AddCommand(newConversationsUntagCommand())

	return cmd
}

func newConversationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONVERSATION_ID",
		Short: "Get a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			conv, err := client.Conversations().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get conversation: %w", err)
			}

			return outputConversation(conv)
		},
	}
}

func newConversationsSearchCommand() *cobra.Command {
	var exactMatch bool

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search conversations",
		Long:  "Full-text search across conversations in the organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			query := &dixa.SearchConversationsQuery{Query: args[0]}
			if cmd.Flags().Changed("exact-match") {
				query.ExactMatch = &exactMatch
			}

			hits, err := client.Conversations().Search(context.Background(), query)
			if err != nil {
				return fmt.Errorf("failed to search conversations: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(hits.Data)
			case OutputFormatYAML:
				return StandardYAMLRenderer(hits.Data)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Matched Fields")

				for _, hit := range hits.Data {
					fields := NotAvailable
					if len(hit.Highlights) > 0 {
						fields = ""
						for field := range hit.Highlights {
							if fields != "" {
								fields += ", "
							}
							fields += field
						}
					}

					_ = table.Append(strconv.FormatInt(hit.ID, 10), fields)
				}

				return table.Render()
			}
		},
	}

	cmd.Flags().BoolVar(&exactMatch, "exact-match", false, "require exact phrase matches")

	return cmd
}

func newConversationsMessagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "messages CONVERSATION_ID",
		Short: "List the messages of a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			messages, err := client.Conversations().ListMessages(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list messages: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(messages.Data)
			case OutputFormatYAML:
				return StandardYAMLRenderer(messages.Data)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Direction", "Author", "Created", "Text")

				for _, msg := range messages.Data {
					created := NotAvailable
					if msg.CreatedAt != nil {
						created = msg.CreatedAt.Format(time.RFC3339)
					}

					_ = table.Append(msg.ID, string(msg.Direction), msg.AuthorID, created, stringOrNA(msg.Text))
				}

				return table.Render()
			}
		},
	}
}

func newConversationsNotesCommand() *cobra.Command {
	var (
		message string
		agentID string
	)

	cmd := &cobra.Command{
		Use:   "notes CONVERSATION_ID",
		Short: "List internal notes, or add one with --add",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if message != "" {
				note, err := client.Conversations().AddInternalNote(ctx, args[0], &dixa.AddInternalNoteRequest{
					Message: message,
					AgentID: agentID,
				})
				if err != nil {
					return fmt.Errorf("failed to add internal note: %w", err)
				}

				fmt.Fprintln(os.Stdout, "Added note", note.ID)

				return nil
			}

			notes, err := client.Conversations().ListInternalNotes(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to list internal notes: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(notes.Data)
			case OutputFormatYAML:
				return StandardYAMLRenderer(notes.Data)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Agent", "Message")

				for _, note := range notes.Data {
					_ = table.Append(note.ID, note.AgentID, note.Message)
				}

				return table.Render()
			}
		},
	}

	cmd.Flags().StringVar(&message, "add", "", "add an internal note with the given message")
	cmd.Flags().StringVar(&agentID, "agent", "", "agent ID attributed to the added note")

	return cmd
}

func newConversationsClaimCommand() *cobra.Command {
	var (
		agentID string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "claim CONVERSATION_ID",
		Short: "Claim a conversation for an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &dixa.ClaimConversationRequest{AgentID: agentID, Force: force}
			if err := client.Conversations().Claim(context.Background(), args[0], request); err != nil {
				return fmt.Errorf("failed to claim conversation: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Conversation %s claimed by agent %s\n", args[0], agentID)

			return nil
		},
	}

	cmd.Flags().StringVar(&agentID, "agent", "", "agent ID claiming the conversation")
	cmd.Flags().BoolVar(&force, "force", false, "claim even if already assigned")
	_ = cmd.MarkFlagRequired("agent")

	return cmd
}

func newConversationsCloseCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "close CONVERSATION_ID",
		Short: "Close a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &dixa.CloseConversationRequest{UserID: userID}
			if err := client.Conversations().Close(context.Background(), args[0], request); err != nil {
				return fmt.Errorf("failed to close conversation: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Conversation %s closed\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID performing the close")

	return cmd
}

func newConversationsReopenCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "reopen CONVERSATION_ID",
		Short: "Reopen a closed conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &dixa.ReopenConversationRequest{UserID: userID}
			if err := client.Conversations().Reopen(context.Background(), args[0], request); err != nil {
				return fmt.Errorf("failed to reopen conversation: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Conversation %s reopened\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID performing the reopen")

	return cmd
}

func newConversationsTransferCommand() *cobra.Command {
	var (
		queueID string
		userID  string
	)

	cmd := &cobra.Command{
		Use:   "transfer CONVERSATION_ID",
		Short: "Transfer a conversation to another queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &dixa.TransferConversationRequest{QueueID: queueID, UserID: userID}
			if err := client.Conversations().Transfer(context.Background(), args[0], request); err != nil {
				return fmt.Errorf("failed to transfer conversation: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Conversation %s transferred to queue %s\n", args[0], queueID)

			return nil
		},
	}

	cmd.Flags().StringVar(&queueID, "queue", "", "destination queue ID")
	cmd.Flags().StringVar(&userID, "user", "", "user ID performing the transfer")
	_ = cmd.MarkFlagRequired("queue")

	return cmd
}

func newConversationsTagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tag CONVERSATION_ID TAG_ID",
		Short: "Tag a conversation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Conversations().Tag(context.Background(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to tag conversation: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Tag %s added to conversation %s\n", args[1], args[0])

			return nil
		},
	}
}

func newConversationsUntagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "untag CONVERSATION_ID TAG_ID",
		Short: "Remove a tag from a conversation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Conversations().Untag(context.Background(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to untag conversation: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Tag %s removed from conversation %s\n", args[1], args[0])

			return nil
		},
	}
}

func outputConversation(conv *dixa.Conversation) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(conv)
	case OutputFormatYAML:
		return StandardYAMLRenderer(conv)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", strconv.FormatInt(conv.ID, 10))
		_ = table.Append("Requester", conv.RequesterID)
		_ = table.Append("Channel", string(conv.Channel))
		_ = table.Append("State", conv.State)
		_ = table.Append("Subject", stringOrNA(conv.Subject))
		_ = table.Append("Queue", stringOrNA(conv.QueueID))
		_ = table.Append("Assigned Agent", stringOrNA(conv.AssignedAgentID))

		if conv.CreatedAt != nil {
			_ = table.Append("Created", conv.CreatedAt.Format(time.RFC3339))
		}

		return table.Render()
	}
}
