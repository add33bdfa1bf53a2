// SPDX-License-Identifier: MPL-2.0

// Package config handles qutekit CLI configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/qutekit/config.cue (or the XDG equivalent on
// Linux, ~/Library/Application Support/qutekit/config.cue on macOS,
// %APPDATA%\qutekit\config.cue on Windows). Every key can be overridden with a
// QUTEKIT_-prefixed environment variable, e.g. QUTEKIT_OUTPUT_FORMAT=json.
//
// The file is validated against an embedded CUE schema (config_schema.cue) before it is
// merged, so typos and out-of-range values are reported with their CUE path.
//
// The userscript library packages under pkg/ never read this configuration; it only
// shapes how the CLI presents and logs what it does.
package config
