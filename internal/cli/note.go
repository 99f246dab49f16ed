package cli

import (
	"github.com/spf13/cobra"

	"github.com/quaywork/warehousectl/internal/workflow"
)

// NoteOptions holds flags for the note command.
type NoteOptions struct {
	*RootOptions
	Confirm   bool
	Threshold int
}

// NewNoteCommand creates the note command.
func NewNoteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NoteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "note <order-number|customer-name> <text>",
		Short: "Append an internal note to an order",
		Long: `Append text to an order's internal notes (comma-separated history) and
apply the Special NOTE! tag so the note is visible upstream. The note text
is taken verbatim; unlike 'do', it is never interpreted as an action.

Example:
  warehousectl note 9219 "check battery"
  warehousectl note "Noah Wolfe" "no memory" --confirm=false`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient(opts.RootOptions)
			if err != nil {
				return err
			}
			r := buildRouter(cmd, client, cfg, opts.Confirm, opts.Threshold)
			act := workflow.Action{Kind: workflow.ActionNote, Note: args[1]}
			res := r.Dispatch(cmd.Context(), args[0], act)
			return finishRun(cmd.OutOrStdout(), res)
		},
	}

	addWorkflowFlags(cmd, &opts.Confirm, &opts.Threshold)
	return cmd
}
