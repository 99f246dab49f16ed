package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quaywork/warehousectl/internal/shipstation"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [status]",
		Short: "List orders by status (default awaiting_shipment)",
		Long: `List orders in a given status. Statuses: awaiting_payment,
awaiting_shipment, shipped, on_hold, cancelled.

Example:
  warehousectl list
  warehousectl list on_hold`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := shipstation.StatusAwaitingShipment
			if len(args) == 1 {
				status = shipstation.Status(args[0])
				if !status.Valid() {
					return fmt.Errorf("invalid status %q: must be one of %v", args[0], shipstation.Statuses)
				}
			}
			return runList(rootOpts, status, cmd)
		},
	}
	return cmd
}

func runList(opts *RootOptions, status shipstation.Status, cmd *cobra.Command) error {
	client, cfg, err := newClient(opts)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	orders, err := client.ListOrdersByStatus(ctx, status, cfg.PageSize)
	if err != nil {
		return WrapExitError(ExitFailure, "listing orders failed", err)
	}

	if opts.Format == "json" {
		return writeJSON(out, orders)
	}

	fmt.Fprintf(out, "Orders with status: %s\n", status)
	fmt.Fprintf(out, "Found %d orders\n\n", len(orders))
	if len(orders) == 0 {
		fmt.Fprintln(out, "No orders found.")
		return nil
	}

	catalog, err := client.ListTags(ctx)
	if err != nil {
		slog.Warn("tag catalog unavailable, omitting tag names", "error", err)
		catalog = nil
	}

	RenderOrderList(out, orders, catalog)
	return nil
}
