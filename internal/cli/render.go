package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/quaywork/warehousectl/internal/shipstation"
)

// maxSummaryItems caps the line items shown in a confirmation summary.
const maxSummaryItems = 5

func displayName(o *shipstation.Order) string {
	if name := o.RecipientName(); name != "" {
		return name
	}
	return "Unknown"
}

// RenderCandidateList writes the numbered disambiguation listing: number,
// name, email, total.
func RenderCandidateList(w io.Writer, orders []shipstation.Order) {
	for i := range orders {
		o := &orders[i]
		fmt.Fprintf(w, "%d. #%s - %s (%s) - $%s\n",
			i+1, o.OrderNumber, displayName(o), o.CustomerEmail, o.OrderTotal.StringFixed(2))
	}
}

// RenderOrderSummary writes the short form used before confirmation
// prompts.
func RenderOrderSummary(w io.Writer, o *shipstation.Order) {
	fmt.Fprintf(w, "Order #%s\n", o.OrderNumber)
	fmt.Fprintf(w, "Customer: %s (%s)\n", displayName(o), o.CustomerEmail)
	fmt.Fprintf(w, "Status: %s\n", o.OrderStatus)
	fmt.Fprintf(w, "Total: $%s\n", o.OrderTotal.StringFixed(2))

	if len(o.Items) == 0 {
		return
	}
	fmt.Fprintln(w, "Items:")
	shown := o.Items
	if len(shown) > maxSummaryItems {
		shown = shown[:maxSummaryItems]
	}
	for _, item := range shown {
		fmt.Fprintf(w, "  - %s x%d\n", item.Name, item.Quantity)
	}
	if extra := len(o.Items) - maxSummaryItems; extra > 0 {
		fmt.Fprintf(w, "  ... and %d more items\n", extra)
	}
}

// RenderOrderDetail writes the long form used by the get command. catalog
// may be nil, in which case tag names are omitted.
func RenderOrderDetail(w io.Writer, o *shipstation.Order, catalog []shipstation.Tag) {
	fmt.Fprintf(w, "Order #%s\n", o.OrderNumber)
	fmt.Fprintf(w, "Status: %s\n", o.OrderStatus)
	if name := o.RecipientName(); name != "" {
		fmt.Fprintf(w, "Customer: %s (%s)\n", name, o.CustomerEmail)
	} else {
		fmt.Fprintf(w, "Customer: %s\n", o.CustomerEmail)
	}
	if o.OrderDate != "" {
		fmt.Fprintf(w, "Order Date: %s\n", o.OrderDate)
	}
	fmt.Fprintf(w, "Total: $%s\n", o.OrderTotal.StringFixed(2))

	if len(o.Shipments) > 0 {
		s := o.Shipments[0]
		fmt.Fprintf(w, "Tracking: %s (%s)\n", s.TrackingNumber, s.CarrierCode)
	}

	if names := o.TagNames(catalog); len(names) > 0 {
		fmt.Fprint(w, "Tags: ")
		for i, name := range names {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, name)
		}
		fmt.Fprintln(w)
	}

	if o.InternalNotes != "" {
		fmt.Fprintf(w, "Internal notes: %s\n", o.InternalNotes)
	}

	if len(o.Items) > 0 {
		fmt.Fprintln(w, "Items:")
		for _, item := range o.Items {
			fmt.Fprintf(w, "  - %s (SKU: %s) x%d\n", item.Name, item.SKU, item.Quantity)
		}
	}
}

// RenderOrderList writes one block per order for the list command.
func RenderOrderList(w io.Writer, orders []shipstation.Order, catalog []shipstation.Tag) {
	for i := range orders {
		o := &orders[i]
		fmt.Fprintf(w, "#%s", o.OrderNumber)
		if names := o.TagNames(catalog); len(names) > 0 {
			fmt.Fprint(w, " [")
			for j, name := range names {
				if j > 0 {
					fmt.Fprint(w, ", ")
				}
				fmt.Fprint(w, name)
			}
			fmt.Fprint(w, "]")
		}
		fmt.Fprintln(w)

		if name := o.RecipientName(); name != "" {
			fmt.Fprintf(w, "  Customer: %s (%s)\n", name, o.CustomerEmail)
		} else {
			fmt.Fprintf(w, "  Customer: %s\n", o.CustomerEmail)
		}
		fmt.Fprintf(w, "  Total: $%s\n", o.OrderTotal.StringFixed(2))
		fmt.Fprintf(w, "  Items: %d\n", len(o.Items))
		if o.OrderDate != "" {
			fmt.Fprintf(w, "  Date: %s\n", o.OrderDate)
		}
		fmt.Fprintln(w)
	}
}

// RenderTagList writes the tag catalog sorted by display name.
func RenderTagList(w io.Writer, tags []shipstation.Tag) {
	sorted := make([]shipstation.Tag, len(tags))
	copy(sorted, tags)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for _, t := range sorted {
		fmt.Fprintf(w, "  %s (ID: %d)\n", t.Name, t.TagID)
	}
}
