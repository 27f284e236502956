package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/helplane-io/dixa-client/internal/constants"
	"github.com/helplane-io/dixa-client/pkg/dixa"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewEndUsersCommand creates the endusers command group.
func NewEndUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "endusers",
		Aliases: []string{"enduser", "customers"},
		Short:   "Manage end users",
		Long:    "List, create, update, and anonymize Dixa end users",
	}

	cmd.AddCommand(newEndUsersListCommand())
	cmd.AddCommand(newEndUsersGetCommand())
	cmd.AddCommand(newEndUsersCreateCommand())
	cmd.AddCommand(newEndUsersConversationsCommand())
	cmd.AddCommand(newEndUsersAnonymizeCommand())

	return cmd
}

func newEndUsersListCommand() *cobra.Command {
	var (
		email    string
		phone    string
		pageSize int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List end users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := dixa.NewQueryParams().WithPageLimit(pageSize)

			if email != "" {
				params = params.WithFilter("email", email)
			}

			if phone != "" {
				params = params.WithFilter("phone", phone)
			}

			var users []dixa.EndUser

			if allPages {
				lister := dixa.PageListerFunc[dixa.EndUser](func(ctx context.Context, _ string, params *dixa.QueryParams) (*dixa.ListResponse[dixa.EndUser], error) {
					return client.EndUsers().List(ctx, params)
				})

				users, err = dixa.FetchAllPages(ctx, lister, "", params, nil)
			} else {
				var page *dixa.ListResponse[dixa.EndUser]

				page, err = client.EndUsers().List(ctx, params)
				if page != nil {
					users = page.Data
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list end users: %w", err)
			}

			return outputEndUsers(users)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "filter by email address")
	cmd.Flags().StringVar(&phone, "phone", "", "filter by phone number")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.StandardPageSize, "results per page")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newEndUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get END_USER_ID",
		Short: "Get an end user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.EndUsers().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get end user: %w", err)
			}

			return outputEndUsers([]dixa.EndUser{*user})
		},
	}
}

func newEndUsersCreateCommand() *cobra.Command {
	var request dixa.EndUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an end user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.EndUsers().Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to create end user: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Created end user", user.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.Email, "email", "", "email address")
	cmd.Flags().StringVar(&request.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&request.DisplayName, "display-name", "", "display name")
	cmd.Flags().StringVar(&request.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&request.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&request.ExternalID, "external-id", "", "external ID")

	return cmd
}

func newEndUsersConversationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "conversations END_USER_ID",
		Short: "List the conversations an end user is requester of",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			convs, err := client.EndUsers().ListConversations(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list conversations: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(convs.Data)
			case OutputFormatYAML:
				return StandardYAMLRenderer(convs.Data)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Channel", "State", "Subject", "Created")

				for _, conv := range convs.Data {
					created := NotAvailable
					if conv.CreatedAt != nil {
						created = conv.CreatedAt.Format(time.RFC3339)
					}

					_ = table.Append(fmt.Sprintf("%d", conv.ID), string(conv.Channel), conv.State, stringOrNA(conv.Subject), created)
				}

				return table.Render()
			}
		},
	}
}

func newEndUsersAnonymizeCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "anonymize END_USER_ID",
		Short: "Anonymize an end user",
		Long:  "Irreversibly scrub an end user's personal data (GDPR erasure)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprintf(os.Stderr, "Really anonymize end user '%s'? This cannot be undone. (y/N): ", args[0])

				reader := bufio.NewReader(os.Stdin)

				response, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}

				if answer := strings.ToLower(strings.TrimSpace(response)); answer != "y" && answer != "yes" {
					fmt.Fprintln(os.Stdout, "Cancelled")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request, err := client.EndUsers().Anonymize(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to anonymize end user: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Anonymization requested for end user %s (request %s)\n", args[0], request.ID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func outputEndUsers(users []dixa.EndUser) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(users)
	case OutputFormatYAML:
		return StandardYAMLRenderer(users)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Display Name", "Email", "Phone")

		for _, user := range users {
			_ = table.Append(user.ID, stringOrNA(user.DisplayName), stringOrNA(user.Email), stringOrNA(user.PhoneNumber))
		}

		return table.Render()
	}
}
