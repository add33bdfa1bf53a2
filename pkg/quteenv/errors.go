// SPDX-License-Identifier: MPL-2.0

package quteenv

import (
	"errors"
	"fmt"

	"github.com/qutekit/qutekit/pkg/types"
)

var (
	// ErrMissingVariable indicates an expected variable is not set. The
	// script was started outside qutebrowser or by an incompatible version.
	ErrMissingVariable = errors.New("missing environment variable")

	// ErrInvalidDiscriminator indicates QUTE_MODE holds a value this package
	// does not understand.
	ErrInvalidDiscriminator = errors.New("invalid launch mode")
)

type (
	// MissingVariableError names the variable that was not set.
	MissingVariableError struct {
		Name types.EnvVarName
	}

	// InvalidDiscriminatorError is returned when the mode variable is set to
	// something other than "hints" or "command".
	InvalidDiscriminatorError struct {
		Name  types.EnvVarName
		Value string
	}
)

// Error implements the error interface.
func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("variable %s not set", e.Name)
}

// Unwrap returns ErrMissingVariable for errors.Is() compatibility.
func (e *MissingVariableError) Unwrap() error { return ErrMissingVariable }

// Error implements the error interface.
func (e *InvalidDiscriminatorError) Error() string {
	return fmt.Sprintf("invalid %s variable %q (want %q or %q)", e.Name, e.Value, SpawnHints, SpawnCommand)
}

// Unwrap returns ErrInvalidDiscriminator for errors.Is() compatibility.
func (e *InvalidDiscriminatorError) Unwrap() error { return ErrInvalidDiscriminator }

// MissingName extracts the variable name from an error chain containing a
// *MissingVariableError. Returns ("", false) otherwise.
func MissingName(err error) (types.EnvVarName, bool) {
	var mvErr *MissingVariableError
	if errors.As(err, &mvErr) {
		return mvErr.Name, true
	}
	return "", false
}
