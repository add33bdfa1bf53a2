// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// It centralizes OS name constants and describes how the host browser's
// command channel behaves on each operating system: a named pipe whose
// commands take effect as soon as they are read, or a plain file that the
// host only reads after the userscript exits.
package platform
