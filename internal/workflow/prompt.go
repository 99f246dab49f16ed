package workflow

import "github.com/quaywork/warehousectl/internal/shipstation"

// SelectOutcome classifies the operator's response to a disambiguation
// prompt.
type SelectOutcome int

const (
	// Selected: the operator picked a candidate.
	Selected SelectOutcome = iota

	// SelectCancelled: the operator explicitly cancelled.
	SelectCancelled

	// SelectInvalid: the response was out of range or not a number. This
	// is reported distinctly from cancellation, never silently defaulted.
	SelectInvalid
)

// PendingChange describes the mutation awaiting operator confirmation.
type PendingChange struct {
	Action Action

	// NewNotes is the combined notes preview, set for note actions.
	NewNotes string
}

// Prompter is the human surface for disambiguation and confirmation. The
// engine decides when a prompt happens and what it must return; rendering
// belongs to the implementation.
type Prompter interface {
	// SelectOne presents the candidates (always two or more; a single
	// candidate is used directly without prompting) and returns the
	// chosen order or a non-Selected outcome.
	SelectOne(candidates []shipstation.Order) (*shipstation.Order, SelectOutcome)

	// Confirm presents the order and the pending change and returns true
	// only for an affirmative response.
	Confirm(order *shipstation.Order, change PendingChange) bool
}
