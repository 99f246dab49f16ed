package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quaywork/warehousectl/internal/search"
	"github.com/quaywork/warehousectl/internal/shipstation"
)

// Store is the full order store surface a router run may touch.
// *shipstation.Client satisfies it.
type Store interface {
	GetOrderByNumber(ctx context.Context, number string) (*shipstation.Order, error)
	ListOrdersByStatus(ctx context.Context, status shipstation.Status, pageSize int) ([]shipstation.Order, error)
	ListTags(ctx context.Context) ([]shipstation.Tag, error)
	AddTag(ctx context.Context, orderID, tagID int64) error
	UpdateOrder(ctx context.Context, order *shipstation.Order) error
}

// Router runs the shared workflow state machine for both RUSH and note
// actions. It is stateless across runs; construct one per invocation or
// reuse freely.
type Router struct {
	Store  Store
	Prompt Prompter

	// PageSize is the single-page size for name searches.
	PageSize int

	// Threshold is the minimum fuzzy score (0-100) for name matches.
	Threshold int

	// SkipConfirm bypasses the confirmation prompt entirely.
	SkipConfirm bool

	// Log defaults to slog.Default.
	Log *slog.Logger
}

// Run classifies the action, resolves the order, and applies the mutation.
// It always returns a terminal Result and never panics past this boundary.
func (r *Router) Run(ctx context.Context, query, action string) Result {
	return r.Dispatch(ctx, query, ParseAction(action))
}

// Dispatch runs the state machine for an already-classified action. The
// rush and note commands use this directly so note text is never
// re-classified (a note whose text happens to be "RUSH" stays a note).
func (r *Router) Dispatch(ctx context.Context, query string, act Action) Result {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}
	if token, err := uuid.NewV7(); err == nil {
		log = log.With("invocation", token.String())
	}

	log.Debug("routing action", "query", query, "action", act.String())

	order, res := r.resolve(ctx, log, query)
	if res != nil {
		return *res
	}

	switch act.Kind {
	case ActionRush:
		return r.runRush(ctx, log, order)
	default:
		return r.runNote(ctx, log, order, act)
	}
}

// resolve turns the query into exactly one order, or a terminal result.
func (r *Router) resolve(ctx context.Context, log *slog.Logger, query string) (*shipstation.Order, *Result) {
	if search.AllDigits(query) {
		order, err := search.LocateByNumber(ctx, r.Store, query)
		switch {
		case shipstation.IsNotFound(err):
			return nil, &Result{
				Outcome: OutcomeNotFound,
				Message: fmt.Sprintf("Order #%s not found.", query),
			}
		case err != nil:
			log.Error("number lookup failed", "query", query, "error", err)
			return nil, &Result{
				Outcome: OutcomeTransportFailure,
				Message: fmt.Sprintf("Order lookup failed: %v", err),
			}
		}
		return order, nil
	}

	orders, err := search.LocateByName(ctx, r.Store, query, r.PageSize, r.Threshold)
	if err != nil {
		log.Error("name search failed", "query", query, "error", err)
		return nil, &Result{
			Outcome: OutcomeTransportFailure,
			Message: fmt.Sprintf("Order search failed: %v", err),
		}
	}

	switch len(orders) {
	case 0:
		return nil, &Result{
			Outcome: OutcomeNoMatches,
			Message: fmt.Sprintf("No orders found for %q (awaiting shipment).", query),
		}
	case 1:
		return &orders[0], nil
	}

	order, sel := r.Prompt.SelectOne(orders)
	switch sel {
	case Selected:
		return order, nil
	case SelectInvalid:
		return nil, &Result{Outcome: OutcomeCancelled, Message: "Invalid selection."}
	default:
		return nil, &Result{Outcome: OutcomeCancelled, Message: "Cancelled."}
	}
}

func (r *Router) runRush(ctx context.Context, log *slog.Logger, order *shipstation.Order) Result {
	if order.OrderStatus != shipstation.StatusAwaitingShipment {
		return Result{
			Outcome: OutcomeStatusMismatch,
			Order:   order,
			Message: fmt.Sprintf("Order #%s has status %q - can only rush orders awaiting shipment.",
				order.OrderNumber, order.OrderStatus),
		}
	}

	// One catalog fetch per run; the id feeds both the already-tagged
	// check and the mutation.
	tagID, found, err := ResolveTag(ctx, r.Store, RushTagName)
	if err != nil {
		log.Error("tag catalog fetch failed", "error", err)
		return Result{
			Outcome: OutcomeTransportFailure,
			Order:   order,
			Message: fmt.Sprintf("Fetching tags failed: %v", err),
		}
	}
	if !found {
		return Result{
			Outcome: OutcomeConfigError,
			Order:   order,
			Message: fmt.Sprintf("Tag %q not found. Create it upstream first.", RushTagName),
		}
	}

	if order.TagIDs.Has(tagID) {
		return Result{
			Outcome: OutcomeSuccess,
			Order:   order,
			Message: fmt.Sprintf("Order #%s already has RUSH tag.", order.OrderNumber),
		}
	}

	if !r.confirm(order, PendingChange{Action: Action{Kind: ActionRush}}) {
		return Result{Outcome: OutcomeCancelled, Order: order, Message: "Cancelled."}
	}

	if !EnsureTagged(ctx, r.Store, order, tagID) {
		return Result{
			Outcome: OutcomeFailure,
			Order:   order,
			Message: fmt.Sprintf("Failed to add RUSH tag to order #%s.", order.OrderNumber),
		}
	}
	return Result{
		Outcome: OutcomeSuccess,
		Order:   order,
		Message: fmt.Sprintf("Added RUSH tag to order #%s.", order.OrderNumber),
	}
}

func (r *Router) runNote(ctx context.Context, log *slog.Logger, order *shipstation.Order, act Action) Result {
	change := PendingChange{
		Action:   act,
		NewNotes: CombineNotes(order.InternalNotes, act.Note),
	}
	if !r.confirm(order, change) {
		return Result{Outcome: OutcomeCancelled, Order: order, Message: "Cancelled."}
	}

	// The visibility tag is best-effort: a missing tag or failed catalog
	// fetch must not block the note itself.
	tagID, found, err := ResolveTag(ctx, r.Store, SpecialNoteTagName)
	switch {
	case err != nil:
		log.Warn("tag catalog fetch failed, appending note untagged", "error", err)
	case !found:
		log.Warn("tag not found, appending note untagged", "tag", SpecialNoteTagName)
	default:
		if !EnsureTagged(ctx, r.Store, order, tagID) {
			log.Warn("tagging failed, appending note untagged", "tag", SpecialNoteTagName)
		}
	}

	if !AppendNote(ctx, r.Store, order, act.Note) {
		return Result{
			Outcome: OutcomeFailure,
			Order:   order,
			Message: fmt.Sprintf("Failed to add note to order #%s.", order.OrderNumber),
		}
	}
	return Result{
		Outcome: OutcomeSuccess,
		Order:   order,
		Message: fmt.Sprintf("Added note to order #%s.", order.OrderNumber),
	}
}

func (r *Router) confirm(order *shipstation.Order, change PendingChange) bool {
	if r.SkipConfirm {
		return true
	}
	return r.Prompt.Confirm(order, change)
}
