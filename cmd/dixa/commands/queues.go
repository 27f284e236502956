package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/helplane-io/dixa-client/pkg/dixa"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewQueuesCommand creates the queues command group.
func NewQueuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "queues",
		Aliases: []string{"queue"},
		Short:   "Manage queues",
		Long:    "List and create Dixa queues and manage queue membership",
	}

	cmd.AddCommand(newQueuesListCommand())
	cmd.AddCommand(newQueuesGetCommand())
	cmd.AddCommand(newQueuesCreateCommand())
	cmd.AddCommand(newQueuesMembersCommand())

	return cmd
}

func newQueuesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List queues",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			queues, err := client.Queues().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list queues: %w", err)
			}

			return outputQueues(queues.Data)
		},
	}
}

func newQueuesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get QUEUE_ID",
		Short: "Get a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			queue, err := client.Queues().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get queue: %w", err)
			}

			return outputQueues([]dixa.Queue{*queue})
		},
	}
}

func newQueuesCreateCommand() *cobra.Command {
	var (
		callFunctionality bool
		isDefault         bool
		algorithm         string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &dixa.CreateQueueRequest{
				Name:              args[0],
				CallFunctionality: callFunctionality,
				IsDefault:         isDefault,
			}
			if algorithm != "" {
				alg := dixa.OfferingAlgorithm(algorithm)
				request.OfferingAlgorithm = &alg
			}

			queue, err := client.Queues().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create queue: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Created queue", queue.ID)

			return nil
		},
	}

	cmd.Flags().BoolVar(&callFunctionality, "call-functionality", false, "enable call functionality")
	cmd.Flags().BoolVar(&isDefault, "default", false, "make this the default queue")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "offering algorithm (e.g. AgentPriority, AllAtOnce)")

	return cmd
}

func newQueuesMembersCommand() *cobra.Command {
	var (
		assign []string
		remove []string
	)

	cmd := &cobra.Command{
		Use:   "members QUEUE_ID",
		Short: "List queue members, or assign/remove agents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if len(assign) > 0 {
				if err := client.Queues().AssignAgents(ctx, args[0], assign); err != nil {
					return fmt.Errorf("failed to assign agents: %w", err)
				}

				fmt.Fprintf(os.Stdout, "Assigned %d agent(s) to queue %s\n", len(assign), args[0])

				return nil
			}

			if len(remove) > 0 {
				if err := client.Queues().RemoveAgents(ctx, args[0], remove); err != nil {
					return fmt.Errorf("failed to remove agents: %w", err)
				}

				fmt.Fprintf(os.Stdout, "Removed %d agent(s) from queue %s\n", len(remove), args[0])

				return nil
			}

			members, err := client.Queues().ListMembers(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to list queue members: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(members.Data)
			case OutputFormatYAML:
				return StandardYAMLRenderer(members.Data)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Agent ID", "Name")

				for _, member := range members.Data {
					_ = table.Append(member.AgentID, member.Name)
				}

				return table.Render()
			}
		},
	}

	cmd.Flags().StringSliceVar(&assign, "assign", nil, "agent IDs to assign")
	cmd.Flags().StringSliceVar(&remove, "remove", nil, "agent IDs to remove")
	cmd.MarkFlagsMutuallyExclusive("assign", "remove")

	return cmd
}

func outputQueues(queues []dixa.Queue) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(queues)
	case OutputFormatYAML:
		return StandardYAMLRenderer(queues)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Default", "Algorithm")

		for _, queue := range queues {
			algorithm := NotAvailable
			if queue.OfferingAlgorithm != nil {
				algorithm = string(*queue.OfferingAlgorithm)
			}

			_ = table.Append(queue.ID, queue.Name, strconv.FormatBool(queue.IsDefault), algorithm)
		}

		return table.Render()
	}
}
