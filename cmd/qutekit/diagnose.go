// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/qutekit/qutekit/internal/issue"
	"github.com/qutekit/qutekit/pkg/qutecmd"
	"github.com/qutekit/qutekit/pkg/quteenv"
	"github.com/qutekit/qutekit/pkg/types"
)

// diagnose wraps a library error into an ActionableError carrying the catalog
// page and exit code that describe it. Errors that already are actionable
// are returned as they are.
func diagnose(operation string, err error) *issue.ActionableError {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae
	}

	ec := issue.NewErrorContext().WithOperation(operation).Wrap(err)

	switch {
	case errors.Is(err, quteenv.ErrMissingVariable):
		name, _ := quteenv.MissingName(err)
		ec.WithResource(string(name)).
			WithIssue(issue.MissingVariableId).
			WithExitCode(types.ExitMissingVariable).
			WithSuggestion("Run the script through qutebrowser's :spawn --userscript")
	case errors.Is(err, quteenv.ErrInvalidDiscriminator):
		ec.WithResource(string(quteenv.VarMode)).
			WithIssue(issue.InvalidDiscriminatorId).
			WithExitCode(types.ExitInvalidDiscriminator)
	case errors.Is(err, qutecmd.ErrChannel):
		var chErr *qutecmd.ChannelError
		if errors.As(err, &chErr) {
			ec.WithResource(string(chErr.Path))
		}
		ec.WithIssue(issue.ChannelUnavailableId).
			WithExitCode(types.ExitChannelFailure).
			WithSuggestion("Check that qutebrowser is still running the userscript")
	case errors.Is(err, qutecmd.ErrInvalidMode):
		ec.WithIssue(issue.InvalidModeId).
			WithExitCode(types.ExitUsage)
	default:
		ec.WithExitCode(types.ExitFailure)
	}

	return ec.Build()
}

// fail renders err for the user and returns the ExitError that ends the
// command. The catalog page is only shown in verbose mode.
func (a *App) fail(operation string, err error) error {
	ae := diagnose(operation, err)
	if a.settings.verbose {
		a.renderIssue(ae.Issue)
	}
	return &ExitError{Code: ae.ExitCode, Err: ae}
}

// renderIssue prints the catalog page for id to stderr, styled with the
// configured color scheme.
func (a *App) renderIssue(id issue.Id) {
	if id == 0 {
		return
	}
	page := issue.Get(id)
	if page == nil {
		return
	}
	rendered, err := page.Render(string(a.settings.cfg.UI.ColorScheme))
	if err != nil {
		a.settings.logger.Warn("failed to render issue catalog entry", "issueID", id, "err", err)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors use their own Format; verbose adds the error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
