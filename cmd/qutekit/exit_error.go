// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/qutekit/qutekit/pkg/types"
)

// ExitError carries the process status a RunE handler wants qutekit to exit
// with. Main turns it into the return value; handlers never call os.Exit.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return "qutekit exited with status " + e.Code.String()
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// exitCodeOf maps a command error to the process exit status. An error never
// exits successfully, so an ExitError holding 0 or an out-of-range code
// becomes ExitFailure.
func exitCodeOf(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		return types.ExitFailure
	}
	if exitErr.Code.IsSuccess() || exitErr.Code.Validate() != nil {
		return types.ExitFailure
	}
	return exitErr.Code
}
