package cli

import (
	"github.com/spf13/cobra"

	"github.com/quaywork/warehousectl/internal/workflow"
)

// RushOptions holds flags for the rush command.
type RushOptions struct {
	*RootOptions
	Confirm   bool
	Threshold int
}

// NewRushCommand creates the rush command.
func NewRushCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RushOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rush <order-number|customer-name>",
		Short: "Add the RUSH tag to an order awaiting shipment",
		Long: `Add the RUSH tag to an order. Only orders awaiting shipment are
eligible; the command is idempotent and reports success when the tag is
already present.

Example:
  warehousectl rush 9219
  warehousectl rush "Noah Wolfe" --confirm=false`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient(opts.RootOptions)
			if err != nil {
				return err
			}
			r := buildRouter(cmd, client, cfg, opts.Confirm, opts.Threshold)
			res := r.Dispatch(cmd.Context(), args[0], workflow.Action{Kind: workflow.ActionRush})
			return finishRun(cmd.OutOrStdout(), res)
		},
	}

	addWorkflowFlags(cmd, &opts.Confirm, &opts.Threshold)
	return cmd
}
