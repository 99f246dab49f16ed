package cli

import (
	"github.com/spf13/cobra"

	"github.com/quaywork/warehousectl/internal/config"
	"github.com/quaywork/warehousectl/internal/shipstation"
	"github.com/quaywork/warehousectl/internal/workflow"
)

// DoOptions holds flags for the do command.
type DoOptions struct {
	*RootOptions
	Confirm   bool
	Threshold int
}

// NewDoCommand creates the unified router command: the action string
// decides the workflow.
func NewDoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "do <order-number|customer-name> <action>",
		Short: "Apply an action to an order (RUSH or a note)",
		Long: `Apply an action to an order. The action "RUSH" (any case) adds the RUSH
tag; any other text is appended as an internal note with the Special NOTE!
tag.

Example:
  warehousectl do "Noah Wolfe" RUSH
  warehousectl do 9219 "check battery"
  warehousectl do "Noah Wolfe" "no memory" --confirm=false`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient(opts.RootOptions)
			if err != nil {
				return err
			}
			r := buildRouter(cmd, client, cfg, opts.Confirm, opts.Threshold)
			res := r.Run(cmd.Context(), args[0], args[1])
			return finishRun(cmd.OutOrStdout(), res)
		},
	}

	addWorkflowFlags(cmd, &opts.Confirm, &opts.Threshold)
	return cmd
}

// addWorkflowFlags registers the flags shared by do, rush, and note.
func addWorkflowFlags(cmd *cobra.Command, confirm *bool, threshold *int) {
	cmd.Flags().BoolVar(confirm, "confirm", true, "ask for confirmation before mutating")
	cmd.Flags().IntVar(threshold, "threshold", config.DefaultFuzzyThreshold, "minimum fuzzy match score (0-100)")
}

// buildRouter assembles the workflow router for a command invocation. The
// --threshold flag wins over the settings file only when it was set
// explicitly.
func buildRouter(cmd *cobra.Command, client *shipstation.Client, cfg config.Config, confirm bool, threshold int) *workflow.Router {
	if !cmd.Flags().Changed("threshold") {
		threshold = cfg.FuzzyThreshold
	}
	return &workflow.Router{
		Store:       client,
		Prompt:      NewTerminalPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		PageSize:    cfg.PageSize,
		Threshold:   threshold,
		SkipConfirm: !confirm,
	}
}
