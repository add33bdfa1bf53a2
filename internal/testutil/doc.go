// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for tests that need a fake qutebrowser
// host: environment maps for both launch modes, channel files, and real
// named pipes with a background reader.
package testutil
