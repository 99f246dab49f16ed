package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaywork/warehousectl/internal/workflow"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitConfigError, GetExitCode(NewExitError(ExitConfigError, "boom")))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "boom")))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", NewExitError(ExitConfigError, "inner"))
	assert.Equal(t, ExitConfigError, GetExitCode(wrapped))
}

func TestExitErrorMessage(t *testing.T) {
	e := WrapExitError(ExitFailure, "context", errors.New("cause"))
	assert.Equal(t, "context: cause", e.Error())
	assert.Equal(t, "cause", e.Unwrap().Error())

	bare := NewExitError(ExitFailure, "just this")
	assert.Equal(t, "just this", bare.Error())
}

// TestExitCodeFor pins the outcome-to-exit-code policy.
func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCodeFor(workflow.OutcomeSuccess))
	assert.Equal(t, ExitSuccess, exitCodeFor(workflow.OutcomeCancelled))
	assert.Equal(t, ExitSuccess, exitCodeFor(workflow.OutcomeNoMatches))

	assert.Equal(t, ExitFailure, exitCodeFor(workflow.OutcomeFailure))
	assert.Equal(t, ExitFailure, exitCodeFor(workflow.OutcomeNotFound))
	assert.Equal(t, ExitFailure, exitCodeFor(workflow.OutcomeStatusMismatch))
	assert.Equal(t, ExitFailure, exitCodeFor(workflow.OutcomeTransportFailure))
	assert.Equal(t, ExitConfigError, exitCodeFor(workflow.OutcomeConfigError))
}

// TestFinishRun: successful terminations print, failed ones become
// ExitErrors.
func TestFinishRun(t *testing.T) {
	buf := &bytes.Buffer{}
	err := finishRun(buf, workflow.Result{
		Outcome: workflow.OutcomeCancelled,
		Message: "Cancelled.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cancelled.\n", buf.String())

	buf.Reset()
	err = finishRun(buf, workflow.Result{
		Outcome: workflow.OutcomeNotFound,
		Message: "Order #1 not found.",
	})
	require.Error(t, err)
	assert.Empty(t, buf.String())
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "Order #1 not found.", err.Error())
}
