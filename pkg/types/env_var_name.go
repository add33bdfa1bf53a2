// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnvVarName is the sentinel error wrapped by InvalidEnvVarNameError.
var ErrInvalidEnvVarName = errors.New("invalid environment variable name")

type (
	// EnvVarName is the name of a process environment variable.
	// A valid name is non-empty and contains neither '=' nor NUL.
	EnvVarName string

	// InvalidEnvVarNameError is returned when an EnvVarName cannot be used
	// as an environment key.
	InvalidEnvVarNameError struct {
		Value EnvVarName
	}
)

// String returns the variable name.
func (n EnvVarName) String() string { return string(n) }

// Validate returns an error if the name cannot be used as an environment key.
func (n EnvVarName) Validate() error {
	if n == "" || strings.ContainsAny(string(n), "=\x00") {
		return &InvalidEnvVarNameError{Value: n}
	}
	return nil
}

// Error implements the error interface for InvalidEnvVarNameError.
func (e *InvalidEnvVarNameError) Error() string {
	return fmt.Sprintf("invalid environment variable name %q: must be non-empty and must not contain '=' or NUL", e.Value)
}

// Unwrap returns ErrInvalidEnvVarName for errors.Is() compatibility.
func (e *InvalidEnvVarNameError) Unwrap() error { return ErrInvalidEnvVarName }
