package search

import (
	"context"

	"github.com/quaywork/warehousectl/internal/shipstation"
)

// OrderSource is the slice of the order store client the locator needs.
// *shipstation.Client satisfies it.
type OrderSource interface {
	GetOrderByNumber(ctx context.Context, number string) (*shipstation.Order, error)
	ListOrdersByStatus(ctx context.Context, status shipstation.Status, pageSize int) ([]shipstation.Order, error)
}

// AllDigits reports whether q is a non-empty string of ASCII digits, the
// test that routes a query down the number path instead of the name path.
func AllDigits(q string) bool {
	if q == "" {
		return false
	}
	for _, r := range q {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// LocateByNumber resolves a single order by its number, status-agnostic.
// The error is shipstation.ErrOrderNotFound when no order matches, or a
// *shipstation.APIError when the lookup itself failed.
func LocateByNumber(ctx context.Context, src OrderSource, number string) (*shipstation.Order, error) {
	return src.GetOrderByNumber(ctx, number)
}

// LocateByName finds candidate orders for a customer-name query. Only
// awaiting-shipment orders are searched; those are the only orders the
// warehouse can still act on.
//
// An empty result is not an error: it means no order matched either phase
// (or there was nothing awaiting shipment at all).
func LocateByName(ctx context.Context, src OrderSource, name string, pageSize, threshold int) ([]shipstation.Order, error) {
	orders, err := src.ListOrdersByStatus(ctx, shipstation.StatusAwaitingShipment, pageSize)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}

	foldedQuery := fold(name)

	if exact := exactMatches(foldedQuery, orders); len(exact) > 0 {
		return exact, nil
	}

	kept := fuzzyMatches(foldedQuery, orders, threshold)
	result := make([]shipstation.Order, 0, len(kept))
	for _, c := range kept {
		result = append(result, c.Order)
	}
	return result, nil
}
