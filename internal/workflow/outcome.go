package workflow

import "github.com/quaywork/warehousectl/internal/shipstation"

// Outcome is the terminal state of a router run. Every run reports exactly
// one.
type Outcome string

const (
	// OutcomeSuccess: the mutation was applied, or was already in place.
	OutcomeSuccess Outcome = "SUCCESS"

	// OutcomeFailure: the mutating call was attempted and failed.
	OutcomeFailure Outcome = "FAILURE"

	// OutcomeNotFound: a number lookup matched no order.
	OutcomeNotFound Outcome = "NOT_FOUND"

	// OutcomeNoMatches: a name search survived neither matching phase.
	OutcomeNoMatches Outcome = "NO_MATCHES"

	// OutcomeCancelled: the operator declined at a prompt.
	OutcomeCancelled Outcome = "CANCELLED"

	// OutcomeStatusMismatch: the order is not eligible for the requested
	// workflow (RUSH requires awaiting_shipment).
	OutcomeStatusMismatch Outcome = "STATUS_MISMATCH"

	// OutcomeConfigError: missing credentials or a required tag that must
	// be created upstream first.
	OutcomeConfigError Outcome = "CONFIG_ERROR"

	// OutcomeTransportFailure: a request to the upstream service failed.
	OutcomeTransportFailure Outcome = "TRANSPORT_FAILURE"
)

// Failed reports whether the outcome should produce a non-zero exit.
// Cancelled and NoMatches are normal terminations of a workflow that chose
// not to act.
func (o Outcome) Failed() bool {
	switch o {
	case OutcomeSuccess, OutcomeCancelled, OutcomeNoMatches:
		return false
	}
	return true
}

// Result is what a router run hands back to the caller: the outcome, a
// single human-readable line, and the order acted on when one was resolved.
type Result struct {
	Outcome Outcome
	Message string
	Order   *shipstation.Order
}
