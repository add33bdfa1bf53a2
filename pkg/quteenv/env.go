// SPDX-License-Identifier: MPL-2.0

package quteenv

import (
	"os"

	"github.com/qutekit/qutekit/pkg/types"
)

type (
	// LookupFunc has the signature of os.LookupEnv.
	LookupFunc func(key string) (string, bool)

	// Env is an immutable snapshot of the variables qutebrowser sets for a
	// userscript. Only the names in Variables() are copied; later changes to
	// the process environment are not observed.
	//
	// A variable set to the empty string is present. Only unset variables
	// produce a *MissingVariableError.
	Env struct {
		vars map[types.EnvVarName]string
	}
)

// FromProcess snapshots the current process environment.
func FromProcess() *Env {
	return FromLookup(os.LookupEnv)
}

// FromLookup snapshots the known variables through lookup. Accepting the
// lookup function lets tests build an Env without touching process state.
func FromLookup(lookup LookupFunc) *Env {
	vars := make(map[types.EnvVarName]string, len(knownVars))
	for _, name := range knownVars {
		if v, ok := lookup(string(name)); ok {
			vars[name] = v
		}
	}
	return &Env{vars: vars}
}

// FromMap snapshots the known variables from m. Unknown keys are ignored.
func FromMap(m map[string]string) *Env {
	return FromLookup(func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	})
}

// Lookup returns the raw value of name and whether it was set. A nil Env
// holds no variables.
func (e *Env) Lookup(name types.EnvVarName) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e.vars[name]
	return v, ok
}

// Require returns the value of name. A name that cannot exist in an
// environment fails with a *types.InvalidEnvVarNameError; an unset one with
// a *MissingVariableError.
func (e *Env) Require(name types.EnvVarName) (string, error) {
	if err := name.Validate(); err != nil {
		return "", err
	}
	v, ok := e.Lookup(name)
	if !ok {
		return "", &MissingVariableError{Name: name}
	}
	return v, nil
}

func (e *Env) requirePath(name types.EnvVarName) (types.FilesystemPath, error) {
	v, err := e.Require(name)
	if err != nil {
		return "", err
	}
	return types.FilesystemPath(v), nil
}

// URL returns QUTE_URL. The variable is set in both launch modes, so it can
// be read before (or without) resolving the launch context.
func (e *Env) URL() (string, error) {
	return e.Require(VarURL)
}

// UserAgent returns the browser's current user agent string.
func (e *Env) UserAgent() (string, error) {
	return e.Require(VarUserAgent)
}

// HTMLFile returns the path of a file containing the HTML source of the current page.
func (e *Env) HTMLFile() (types.FilesystemPath, error) {
	return e.requirePath(VarHTML)
}

// TextFile returns the path of a file containing the plain text of the current page.
func (e *Env) TextFile() (types.FilesystemPath, error) {
	return e.requirePath(VarText)
}

// FIFO returns the path of the command channel.
func (e *Env) FIFO() (types.FilesystemPath, error) {
	return e.requirePath(VarFIFO)
}

// ConfigDir returns qutebrowser's configuration directory.
func (e *Env) ConfigDir() (types.FilesystemPath, error) {
	return e.requirePath(VarConfigDir)
}

// DataDir returns qutebrowser's data directory.
func (e *Env) DataDir() (types.FilesystemPath, error) {
	return e.requirePath(VarDataDir)
}

// DownloadDir returns the downloads directory.
func (e *Env) DownloadDir() (types.FilesystemPath, error) {
	return e.requirePath(VarDownloadDir)
}

// CommandlineText returns the text in qutebrowser's command line.
func (e *Env) CommandlineText() (string, error) {
	return e.Require(VarCommandlineText)
}
