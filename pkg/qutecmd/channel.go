// SPDX-License-Identifier: MPL-2.0

package qutecmd

import (
	"io"
	"io/fs"
	"os"

	"github.com/qutekit/qutekit/pkg/platform"
	"github.com/qutekit/qutekit/pkg/quteenv"
	"github.com/qutekit/qutekit/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// Channel is the path of qutebrowser's command channel. It holds no open
	// handle; each Send is an independent open/write/close cycle. A Channel
	// is immutable and safe to share.
	Channel struct {
		path   types.FilesystemPath
		logger *log.Logger
	}

	// Option configures a Channel.
	Option func(*Channel)
)

// WithLogger sets the logger Send reports to. By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(c *Channel) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Channel for path. The path is not checked; qutebrowser
// creates it before spawning the userscript.
func New(path types.FilesystemPath, opts ...Option) *Channel {
	c := &Channel{
		path:   path,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromEnv returns the Channel named by QUTE_FIFO in env. An empty or blank
// QUTE_FIFO is rejected with a *ChannelError wrapping the
// *types.InvalidFilesystemPathError.
func FromEnv(env *quteenv.Env, opts ...Option) (*Channel, error) {
	path, err := env.FIFO()
	if err != nil {
		return nil, err
	}
	if err := path.Validate(); err != nil {
		return nil, &ChannelError{Op: "resolve", Path: path, Err: err}
	}
	return New(path, opts...), nil
}

// Path returns the channel path.
func (c *Channel) Path() types.FilesystemPath { return c.path }

// Delivery reports when commands sent on this platform take effect.
func (c *Channel) Delivery() platform.Delivery { return platform.CurrentDelivery() }

// Open opens the channel read-only and hands the handle to the caller, who
// is responsible for closing it. Opening a named pipe for reading blocks
// until a writer appears.
func (c *Channel) Open() (*os.File, error) {
	f, err := os.Open(string(c.path))
	if err != nil {
		return nil, &ChannelError{Op: "open", Path: c.path, Err: err}
	}
	return f, nil
}

// Send writes text to the channel exactly as given; no newline is added.
// The path is never created, so a missing channel fails before anything is
// written. Opening a named pipe blocks until qutebrowser is reading it.
// Failures are returned as a *ChannelError and are not retried.
func (c *Channel) Send(text string) error {
	if err := c.path.Validate(); err != nil {
		c.logger.Error("command channel has no path", "err", err)
		return &ChannelError{Op: "open", Path: c.path, Err: err}
	}

	f, err := os.OpenFile(string(c.path), os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		c.logger.Error("cannot open command channel", "path", c.path, "err", err)
		return &ChannelError{Op: "open", Path: c.path, Err: err}
	}

	n, err := io.WriteString(f, text)
	closeErr := f.Close()
	if err != nil {
		c.logger.Error("cannot write command", "path", c.path, "written", n, "err", err)
		return &ChannelError{Op: "write", Path: c.path, Err: err}
	}
	if closeErr != nil {
		c.logger.Error("cannot close command channel", "path", c.path, "err", closeErr)
		return &ChannelError{Op: "close", Path: c.path, Err: closeErr}
	}

	c.logger.Debug("sent command", "path", c.path, "bytes", n)
	return nil
}

// IsNamedPipe reports whether the channel path is a FIFO.
func (c *Channel) IsNamedPipe() (bool, error) {
	fi, err := os.Stat(string(c.path))
	if err != nil {
		return false, &ChannelError{Op: "stat", Path: c.path, Err: err}
	}
	return fi.Mode()&fs.ModeNamedPipe != 0, nil
}
