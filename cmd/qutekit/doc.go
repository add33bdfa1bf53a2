// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for qutekit.
//
// qutekit lets shell userscripts use the same launch-context resolution and
// command channel as Go userscripts: `qutekit context` prints what
// qutebrowser passed in, and `send`, `enter-mode` and `fake-key` write
// commands back to it.
package cmd
