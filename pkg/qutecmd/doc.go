// SPDX-License-Identifier: MPL-2.0

// Package qutecmd sends commands from a userscript back to qutebrowser.
//
// qutebrowser creates a channel at the path in QUTE_FIFO before spawning the
// userscript. Every Send opens that path, writes the command text and closes
// it again; no handle is held between calls.
//
// When a command takes effect depends on the platform and is decided by the
// host, not by this package:
//
//   - On Unix and macOS the channel is a named pipe. qutebrowser reads it
//     while the userscript runs, so a command takes effect as soon as it is
//     drained, possibly before Send's caller does anything else. Sends from
//     one process are read in the order they were issued.
//   - On Windows the channel is a regular file. qutebrowser reads it only
//     after the userscript has exited, so every command takes effect at exit.
//
// Channel.Delivery reports which of the two applies. No synchronization with
// the host is attempted either way.
package qutecmd
