package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/helplane-io/dixa-client/pkg/dixa"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook"},
		Short:   "Manage webhook subscriptions",
		Long:    "List, create, enable/disable, and delete Dixa webhook subscriptions",
	}

	cmd.AddCommand(newWebhooksListCommand())
	cmd.AddCommand(newWebhooksCreateCommand())
	cmd.AddCommand(newWebhooksEnableCommand(true))
	cmd.AddCommand(newWebhooksEnableCommand(false))
	cmd.AddCommand(newWebhooksDeleteCommand())
	cmd.AddCommand(newWebhooksDeliveriesCommand())

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webhook subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			webhooks, err := client.Webhooks().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(webhooks.Data)
			case OutputFormatYAML:
				return StandardYAMLRenderer(webhooks.Data)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "URL", "Enabled", "Events")

				for _, webhook := range webhooks.Data {
					_ = table.Append(webhook.ID, webhook.Name, webhook.URL,
						strconv.FormatBool(webhook.Enabled), strings.Join(webhook.Events, ","))
				}

				return table.Render()
			}
		},
	}
}

func newWebhooksCreateCommand() *cobra.Command {
	var request dixa.CreateWebhookRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a webhook subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			webhook, err := client.Webhooks().Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to create webhook: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Created webhook", webhook.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "subscription name")
	cmd.Flags().StringVar(&request.URL, "url", "", "delivery URL")
	cmd.Flags().StringVar(&request.Secret, "secret", "", "signing secret")
	cmd.Flags().StringSliceVar(&request.Events, "events", nil, "event names to subscribe to")
	cmd.Flags().BoolVar(&request.Enabled, "enabled", true, "enable the subscription on creation")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("events")

	return cmd
}

func newWebhooksEnableCommand(enable bool) *cobra.Command {
	use, short := "enable", "Enable a webhook subscription"
	if !enable {
		use, short = "disable", "Disable a webhook subscription"
	}

	return &cobra.Command{
		Use:   use + " WEBHOOK_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			enabled := enable

			_, err = client.Webhooks().Patch(context.Background(), args[0], &dixa.PatchWebhookRequest{
				Enabled: &enabled,
			})
			if err != nil {
				return fmt.Errorf("failed to update webhook: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Webhook %s %sd\n", args[0], use)

			return nil
		},
	}
}

func newWebhooksDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete WEBHOOK_ID",
		Short: "Delete a webhook subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprintf(os.Stderr, "Really delete webhook '%s'? (y/N): ", args[0])

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

			if err := client.Webhooks().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete webhook: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Deleted webhook", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newWebhooksDeliveriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deliveries WEBHOOK_ID",
		Short: "Show recent delivery statuses for a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			statuses, err := client.Webhooks().ListDeliveryStatuses(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list delivery statuses: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(statuses.Data)
			case OutputFormatYAML:
				return StandardYAMLRenderer(statuses.Data)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Event", "Success", "Status Code", "Delivered At")

				for _, status := range statuses.Data {
					code := NotAvailable
					if status.StatusCode != nil {
						code = strconv.Itoa(*status.StatusCode)
					}

					delivered := NotAvailable
					if status.DeliveredAt != nil {
						delivered = status.DeliveredAt.Format(time.RFC3339)
					}

					_ = table.Append(status.Event, strconv.FormatBool(status.Success), code, delivered)
				}

				return table.Render()
			}
		},
	}
}
