// Package workflow is the action routing engine.
//
// A single run classifies a free-text action into a RUSH or note workflow,
// resolves the target order (number path or fuzzy name path), optionally
// disambiguates between candidates and confirms with the operator, and
// applies the mutation idempotently. Both workflows share one state
// machine:
//
//	Classify → Resolve → [Disambiguate] → [Confirm] → Mutate → Done
//
// Every path terminates in exactly one Outcome; nothing panics or escapes
// past Done. The RUSH tag is resolved once per run and threaded through
// the already-tagged check and the mutation, so a run hits the tag catalog
// at most once per tag name.
package workflow
