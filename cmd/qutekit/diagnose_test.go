// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/qutekit/qutekit/internal/issue"
	"github.com/qutekit/qutekit/pkg/qutecmd"
	"github.com/qutekit/qutekit/pkg/quteenv"
	"github.com/qutekit/qutekit/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestDiagnose(t *testing.T) {
	t.Parallel()

	channelErr := &qutecmd.ChannelError{Op: "open", Path: "/run/fifo", Err: fs.ErrNotExist}

	tests := []struct {
		name     string
		err      error
		issue    issue.Id
		code     types.ExitCode
		resource string
	}{
		{
			name:     "missing variable",
			err:      &quteenv.MissingVariableError{Name: quteenv.VarFIFO},
			issue:    issue.MissingVariableId,
			code:     types.ExitMissingVariable,
			resource: "QUTE_FIFO",
		},
		{
			name:     "invalid discriminator",
			err:      &quteenv.InvalidDiscriminatorError{Name: quteenv.VarMode, Value: "x"},
			issue:    issue.InvalidDiscriminatorId,
			code:     types.ExitInvalidDiscriminator,
			resource: "QUTE_MODE",
		},
		{
			name:     "channel",
			err:      fmt.Errorf("send: %w", channelErr),
			issue:    issue.ChannelUnavailableId,
			code:     types.ExitChannelFailure,
			resource: "/run/fifo",
		},
		{
			name:  "empty channel path",
			err:   &qutecmd.ChannelError{Op: "resolve", Err: &types.InvalidFilesystemPathError{}},
			issue: issue.ChannelUnavailableId,
			code:  types.ExitChannelFailure,
		},
		{
			name:  "invalid mode",
			err:   &qutecmd.InvalidModeError{Value: "visual"},
			issue: issue.InvalidModeId,
			code:  types.ExitUsage,
		},
		{
			name: "unclassified",
			err:  errors.New("boom"),
			code: types.ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ae := diagnose("do thing", tt.err)
			assert.Equal(t, "do thing", ae.Operation)
			assert.Equal(t, tt.issue, ae.Issue)
			assert.Equal(t, tt.code, ae.ExitCode)
			assert.Equal(t, tt.resource, ae.Resource)
			assert.ErrorIs(t, ae, tt.err)
		})
	}
}

func TestDiagnose_KeepsActionableErrors(t *testing.T) {
	t.Parallel()

	orig := issue.NewErrorContext().
		WithOperation("load configuration").
		WithIssue(issue.ConfigLoadFailedId).
		WithExitCode(types.ExitUsage).
		Build()

	assert.Same(t, orig, diagnose("other", fmt.Errorf("wrapped: %w", orig)))
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	ae := issue.NewErrorContext().
		WithOperation("send command").
		WithSuggestion("Try again").
		Wrap(errors.New("boom")).
		BuildError()

	assert.Equal(t, "plain", formatErrorForDisplay(errors.New("plain"), false))
	assert.Contains(t, formatErrorForDisplay(ae, false), "Try again")
	assert.Contains(t, formatErrorForDisplay(ae, true), "Error chain:")
}
