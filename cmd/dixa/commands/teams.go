package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/helplane-io/dixa-client/pkg/dixa"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTeamsCommand creates the teams command group.
func NewTeamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "teams",
		Aliases: []string{"team"},
		Short:   "Manage teams",
		Long:    "List, create, and delete Dixa teams and manage their members",
	}

	cmd.AddCommand(newTeamsListCommand())
	cmd.AddCommand(newTeamsCreateCommand())
	cmd.AddCommand(newTeamsDeleteCommand())
	cmd.AddCommand(newTeamsMembersCommand())

	return cmd
}

func newTeamsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			teams, err := client.Teams().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list teams: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(teams.Data)
			case OutputFormatYAML:
				return StandardYAMLRenderer(teams.Data)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name")

				for _, team := range teams.Data {
					_ = table.Append(team.ID, team.Name)
				}

				return table.Render()
			}
		},
	}
}

func newTeamsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			team, err := client.Teams().Create(context.Background(), &dixa.CreateTeamRequest{Name: args[0]})
			if err != nil {
				return fmt.Errorf("failed to create team: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Created team", team.ID)

			return nil
		},
	}
}

func newTeamsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete TEAM_ID",
		Short: "Delete a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprintf(os.Stderr, "Really delete team '%s'? (y/N): ", args[0])

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

			if err := client.Teams().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete team: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Deleted team", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newTeamsMembersCommand() *cobra.Command {
	var (
		add    []string
		remove []string
	)

	cmd := &cobra.Command{
		Use:   "members TEAM_ID",
		Short: "List team members, or add/remove agents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if len(add) > 0 {
				if err := client.Teams().AddMembers(ctx, args[0], add); err != nil {
					return fmt.Errorf("failed to add team members: %w", err)
				}

				fmt.Fprintf(os.Stdout, "Added %d agent(s) to team %s\n", len(add), args[0])

				return nil
			}

			if len(remove) > 0 {
				if err := client.Teams().RemoveMembers(ctx, args[0], remove); err != nil {
					return fmt.Errorf("failed to remove team members: %w", err)
				}

				fmt.Fprintf(os.Stdout, "Removed %d agent(s) from team %s\n", len(remove), args[0])

				return nil
			}

			members, err := client.Teams().ListMembers(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to list team members: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(members.Data)
			case OutputFormatYAML:
				return StandardYAMLRenderer(members.Data)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Display Name", "Email")

				for _, member := range members.Data {
					_ = table.Append(member.ID, member.DisplayName, member.Email)
				}

				return table.Render()
			}
		},
	}

	cmd.Flags().StringSliceVar(&add, "add", nil, "agent IDs to add")
	cmd.Flags().StringSliceVar(&remove, "remove", nil, "agent IDs to remove")
	cmd.MarkFlagsMutuallyExclusive("add", "remove")

	return cmd
}
