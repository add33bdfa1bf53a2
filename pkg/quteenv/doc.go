// SPDX-License-Identifier: MPL-2.0

// Package quteenv decodes the launch context qutebrowser hands to a
// userscript through environment variables.
//
// The environment is read once into an immutable Env snapshot. Resolving the
// snapshot yields a LaunchContext, which is either a *HintsLaunch (the script
// was started from a hint overlay against one element) or a *CommandLaunch
// (the script was started by a command or key binding against the whole
// page). Variables that only make sense in one mode are only reachable
// through that mode's type:
//
//	env := quteenv.FromProcess()
//	lc, err := env.Resolve()
//	if err != nil {
//		return err
//	}
//	switch lc := lc.(type) {
//	case *quteenv.HintsLaunch:
//		html, err := lc.SelectedHTML()
//		...
//	case *quteenv.CommandLaunch:
//		title, err := lc.Title()
//		...
//	}
//
// Values are looked up lazily: an accessor fails with a *MissingVariableError
// naming its variable only when it is called, regardless of which other
// variables are present.
package quteenv
