package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quaywork/warehousectl/internal/config"
	"github.com/quaywork/warehousectl/internal/search"
	"github.com/quaywork/warehousectl/internal/shipstation"
)

// FindOptions holds flags for the find command.
type FindOptions struct {
	*RootOptions
	Threshold int
}

// NewFindCommand creates the find command.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FindOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "find <order-number|customer-name>",
		Short: "Locate orders by number or fuzzy customer name",
		Long: `Locate orders. An all-digit query is looked up by order number; anything
else searches awaiting-shipment orders by customer name, exact substring
first and fuzzy matching as a fallback.

Example:
  warehousectl find 9219
  warehousectl find "noha wolfe"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Threshold, "threshold", config.DefaultFuzzyThreshold, "minimum fuzzy match score (0-100)")
	return cmd
}

func runFind(opts *FindOptions, query string, cmd *cobra.Command) error {
	client, cfg, err := newClient(opts.RootOptions)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	if search.AllDigits(query) {
		order, err := search.LocateByNumber(ctx, client, query)
		if shipstation.IsNotFound(err) {
			return NewExitError(ExitFailure, fmt.Sprintf("Order #%s not found.", query))
		}
		if err != nil {
			return WrapExitError(ExitFailure, "order lookup failed", err)
		}
		if opts.Format == "json" {
			return writeJSON(out, order)
		}
		RenderOrderDetail(out, order, nil)
		return nil
	}

	// The flag wins over the settings file only when set explicitly;
	// 0 is a legitimate threshold, not a sentinel.
	threshold := opts.Threshold
	if !cmd.Flags().Changed("threshold") {
		threshold = cfg.FuzzyThreshold
	}

	orders, err := search.LocateByName(ctx, client, query, cfg.PageSize, threshold)
	if err != nil {
		return WrapExitError(ExitFailure, "order search failed", err)
	}
	if len(orders) == 0 {
		// A miss is a normal termination, like NoMatches in a workflow.
		fmt.Fprintf(out, "No orders found for %q (awaiting shipment).\n", query)
		return nil
	}

	if opts.Format == "json" {
		return writeJSON(out, orders)
	}
	fmt.Fprintf(out, "Found %d matching orders:\n\n", len(orders))
	RenderCandidateList(out, orders)
	return nil
}
