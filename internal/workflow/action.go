package workflow

import "strings"

// Tag names with upstream significance. Both must already exist in the
// upstream tag catalog; this tool never creates tags.
const (
	RushTagName = "RUSH"

	// SpecialNoteTagName is applied alongside an internal note so the
	// note is visible in the upstream UI.
	SpecialNoteTagName = "Special NOTE!"
)

// ActionKind discriminates the Action union.
type ActionKind int

const (
	ActionRush ActionKind = iota
	ActionNote
)

// Action is the classified form of the caller's free-text action string:
// either Rush, or Note carrying the text verbatim.
type Action struct {
	Kind ActionKind
	Note string
}

// ParseAction classifies an action string. Classification is
// case-insensitive and exhaustive: exactly "RUSH" (any case) is Rush,
// anything else is a Note with that literal text.
func ParseAction(s string) Action {
	if strings.EqualFold(s, RushTagName) {
		return Action{Kind: ActionRush}
	}
	return Action{Kind: ActionNote, Note: s}
}

func (a Action) String() string {
	if a.Kind == ActionRush {
		return "RUSH"
	}
	return "note: " + a.Note
}
