package commands

import (
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

// NewAgentsCommand creates the agents command group.
func NewAgentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agents",
		Aliases: []string{"agent"},
		Short:   "Manage agents",
		Long:    "List, create, and inspect Dixa agents and their presence",
	}

	cmd.AddCommand(newAgentsListCommand())
	cmd.AddCommand(newAgentsGetCommand())
	cmd.AddCommand(newAgentsCreateCommand())
	cmd.AddCommand(newAgentsPresenceCommand())

	return cmd
}

func newAgentsListCommand() *cobra.Command {
	var (
		email    string
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := dixa.NewQueryParams().WithPageLimit(pageSize)
			if email != "" {
				params = params.WithFilter("email", email)
			}

			agents, err := client.Agents().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list agents: %w", err)
			}

			return outputAgents(agents.Data)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "filter by email address")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.StandardPageSize, "results per page")

	return cmd
}

func newAgentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get AGENT_ID",
		Short: "Get an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			agent, err := client.Agents().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get agent: %w", err)
			}

			return outputAgents([]dixa.Agent{*agent})
		},
	}
}

func newAgentsCreateCommand() *cobra.Command {
	var request dixa.AgentRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			agent, err := client.Agents().Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to create agent: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Created agent", agent.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.Email, "email", "", "email address")
	cmd.Flags().StringVar(&request.DisplayName, "display-name", "", "display name")
	cmd.Flags().StringVar(&request.PhoneNumber, "phone", "", "phone number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("display-name")

	return cmd
}

func newAgentsPresenceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presence [AGENT_ID]",
		Short: "Show agent presence",
		Long:  "Show presence for one agent, or for every agent in the organization",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var presences []dixa.AgentPresence

			if len(args) == 1 {
				presence, err := client.Agents().GetPresence(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get agent presence: %w", err)
				}

				presences = []dixa.AgentPresence{*presence}
			} else {
				list, err := client.Agents().ListPresence(ctx)
				if err != nil {
					return fmt.Errorf("failed to list agent presence: %w", err)
				}

				presences = list.Data
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(presences)
			case OutputFormatYAML:
				return StandardYAMLRenderer(presences)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Agent", "Presence", "Connection", "Channels", "Last Seen")

				for _, presence := range presences {
					channels := make([]string, 0, len(presence.ActiveChannels))
					for _, channel := range presence.ActiveChannels {
						channels = append(channels, string(channel))
					}

					lastSeen := NotAvailable
					if presence.LastSeenAt != nil {
						lastSeen = presence.LastSeenAt.Format(time.RFC3339)
					}

					_ = table.Append(presence.AgentID, string(presence.PresenceStatus),
						presence.ConnectionStatus, strings.Join(channels, ","), lastSeen)
				}

				return table.Render()
			}
		},
	}
}

func outputAgents(agents []dixa.Agent) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(agents)
	case OutputFormatYAML:
		return StandardYAMLRenderer(agents)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Display Name", "Email", "Phone")

		for _, agent := range agents {
			_ = table.Append(agent.ID, agent.DisplayName, agent.Email, stringOrNA(agent.PhoneNumber))
		}

		return table.Render()
	}
}
