package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/helplane-io/dixa-client/pkg/dixa"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage tags",
		Long:    "List, create, activate, and deactivate Dixa tags",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsCreateCommand())
	cmd.AddCommand(newTagsActivateCommand())
	cmd.AddCommand(newTagsDeactivateCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := client.Tags().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(tags.Data)
			case OutputFormatYAML:
				return StandardYAMLRenderer(tags.Data)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "State", "Color")

				for _, tag := range tags.Data {
					_ = table.Append(tag.ID, tag.Name, string(tag.State), stringOrNA(tag.Color))
				}

				return table.Render()
			}
		},
	}
}

func newTagsCreateCommand() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := client.Tags().Create(context.Background(), &dixa.CreateTagRequest{
				Name:  args[0],
				Color: color,
			})
			if err != nil {
				return fmt.Errorf("failed to create tag: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Created tag", tag.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "tag color (hex)")

	return cmd
}

func newTagsActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate TAG_ID",
		Short: "Activate a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Tags().Activate(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to activate tag: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Activated tag", args[0])

			return nil
		},
	}
}

func newTagsDeactivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate TAG_ID",
		Short: "Deactivate a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Tags().Deactivate(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to deactivate tag: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Deactivated tag", args[0])

			return nil
		},
	}
}
