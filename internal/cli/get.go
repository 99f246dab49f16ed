package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quaywork/warehousectl/internal/shipstation"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <order-number>",
		Short: "Show one order's details",
		Long: `Fetch a single order by its order number and print its details:
status, customer, tracking, tags, notes, and line items.

Example:
  warehousectl get 9219`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runGet(opts *RootOptions, number string, cmd *cobra.Command) error {
	client, _, err := newClient(opts)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	order, err := client.GetOrderByNumber(ctx, number)
	if shipstation.IsNotFound(err) {
		return NewExitError(ExitFailure, fmt.Sprintf("Order #%s not found.", number))
	}
	if err != nil {
		return WrapExitError(ExitFailure, "order lookup failed", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), order)
	}

	// Tag names are cosmetic here; a catalog failure degrades to bare ids.
	catalog, err := client.ListTags(ctx)
	if err != nil {
		slog.Warn("tag catalog unavailable, omitting tag names", "error", err)
		catalog = nil
	}

	RenderOrderDetail(cmd.OutOrStdout(), order, catalog)
	return nil
}
