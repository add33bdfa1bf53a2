// SPDX-License-Identifier: MPL-2.0

package qutecmd

import (
	"errors"
	"fmt"

	"github.com/qutekit/qutekit/pkg/types"
)

var (
	// ErrChannel indicates the command channel could not be opened, written
	// or inspected. The underlying *fs.PathError is also in the chain.
	ErrChannel = errors.New("command channel unavailable")

	// ErrInvalidMode is the sentinel error wrapped by InvalidModeError.
	ErrInvalidMode = errors.New("invalid mode")
)

type (
	// ChannelError records the failed channel operation and its path.
	ChannelError struct {
		Op   string
		Path types.FilesystemPath
		Err  error
	}

	// InvalidModeError is returned when a Mode is not one qutebrowser accepts
	// from userscripts.
	InvalidModeError struct {
		Value Mode
	}
)

// Error implements the error interface.
func (e *ChannelError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s command channel: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s command channel %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns both ErrChannel and the underlying error, so errors.Is works
// for ErrChannel as well as for conditions like fs.ErrNotExist.
func (e *ChannelError) Unwrap() []error { return []error{ErrChannel, e.Err} }

// Error implements the error interface.
func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode %q (valid: %s)", e.Value, validModeList())
}

// Unwrap returns ErrInvalidMode for errors.Is() compatibility.
func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }
