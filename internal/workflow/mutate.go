package workflow

import (
	"context"
	"log/slog"

	"github.com/quaywork/warehousectl/internal/shipstation"
)

// Mutator is the slice of the order store client the mutation layer needs.
type Mutator interface {
	AddTag(ctx context.Context, orderID, tagID int64) error
	UpdateOrder(ctx context.Context, order *shipstation.Order) error
}

// EnsureTagged makes sure order carries tagID, issuing the add-tag call
// only when the already-fetched order data shows the tag absent. The
// membership check costs no round trip; the tag set was normalized on
// read.
//
// Returns false only when a mutating call was attempted and failed. Errors
// never escape; callers get a boolean-like result.
func EnsureTagged(ctx context.Context, m Mutator, order *shipstation.Order, tagID int64) bool {
	if order.TagIDs.Has(tagID) {
		return true
	}
	if err := m.AddTag(ctx, order.OrderID, tagID); err != nil {
		slog.Error("add tag failed", "order", order.OrderNumber, "tag_id", tagID, "error", err)
		return false
	}

	// Record the upstream effect locally so a repeat call on the same
	// order data is a no-op.
	order.TagIDs = append(order.TagIDs, tagID)
	return true
}

// CombineNotes computes the stored notes value for appending text: the
// existing history plus ", " plus the new text, or the text verbatim when
// there is no history. Note history is a single comma-joined string
// upstream, not a list.
func CombineNotes(existing, text string) string {
	if existing == "" {
		return text
	}
	return existing + ", " + text
}

// AppendNote appends text to the order's internal notes and writes the
// order back with a full-record update (the upstream API takes the
// complete object, not a patch).
//
// Unlike EnsureTagged this is not idempotent at the data level: appending
// the same text twice stores it twice.
func AppendNote(ctx context.Context, m Mutator, order *shipstation.Order, text string) bool {
	updated := *order
	updated.InternalNotes = CombineNotes(order.InternalNotes, text)

	if err := m.UpdateOrder(ctx, &updated); err != nil {
		slog.Error("note update failed", "order", order.OrderNumber, "error", err)
		return false
	}

	order.InternalNotes = updated.InternalNotes
	return true
}
