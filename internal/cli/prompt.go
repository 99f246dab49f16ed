package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/quaywork/warehousectl/internal/shipstation"
	"github.com/quaywork/warehousectl/internal/workflow"
)

// TerminalPrompter implements workflow.Prompter over line-oriented console
// I/O. The engine decides when prompts happen; this type only renders and
// reads.
type TerminalPrompter struct {
	out    io.Writer
	reader *bufio.Reader
}

// NewTerminalPrompter wires a prompter to the command's streams.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		out:    out,
		reader: bufio.NewReader(in),
	}
}

func (p *TerminalPrompter) readLine() (string, bool) {
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// SelectOne presents the candidates and reads a 1-based index or an
// explicit cancel. Anything else is an invalid selection, reported as such
// rather than defaulted.
func (p *TerminalPrompter) SelectOne(candidates []shipstation.Order) (*shipstation.Order, workflow.SelectOutcome) {
	fmt.Fprintf(p.out, "\nFound %d matching orders:\n\n", len(candidates))
	RenderCandidateList(p.out, candidates)
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, "Select order number (or 'cancel'): ")

	resp, ok := p.readLine()
	if !ok || strings.EqualFold(resp, "cancel") {
		return nil, workflow.SelectCancelled
	}

	idx, err := strconv.Atoi(resp)
	if err != nil || idx < 1 || idx > len(candidates) {
		return nil, workflow.SelectInvalid
	}
	return &candidates[idx-1], workflow.Selected
}

// Confirm renders the order summary plus the pending change and accepts
// only "y" or "yes" (any case) as affirmative.
func (p *TerminalPrompter) Confirm(order *shipstation.Order, change workflow.PendingChange) bool {
	fmt.Fprintln(p.out)
	RenderOrderSummary(p.out, order)

	question := "Add RUSH tag to this order? (y/n): "
	if change.Action.Kind == workflow.ActionNote {
		fmt.Fprintln(p.out)
		if order.InternalNotes != "" {
			fmt.Fprintf(p.out, "Current notes: %s\n", order.InternalNotes)
			fmt.Fprintf(p.out, "New notes will be: %s\n", change.NewNotes)
		} else {
			fmt.Fprintf(p.out, "New notes: %s\n", change.NewNotes)
		}
		question = "Add this note to order? (y/n): "
	}

	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, question)

	resp, ok := p.readLine()
	if !ok {
		return false
	}
	resp = strings.ToLower(resp)
	return resp == "y" || resp == "yes"
}
