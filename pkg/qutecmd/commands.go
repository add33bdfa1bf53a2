// SPDX-License-Identifier: MPL-2.0

package qutecmd

import (
	"github.com/qutekit/qutekit/pkg/quteenv"
)

// EnterModeCommand returns the `enter-mode <mode>` command line for m.
func EnterModeCommand(m Mode) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	return "enter-mode " + string(m), nil
}

// FakeKeyCommand returns the `fake-key <keys>` command line. keys is used
// verbatim; see QuoteArg when it may contain spaces or quotes.
func FakeKeyCommand(keys string) string {
	return "fake-key " + keys
}

// EnterMode sends `enter-mode <mode>`.
func (c *Channel) EnterMode(m Mode) error {
	cmd, err := EnterModeCommand(m)
	if err != nil {
		return err
	}
	return c.Send(cmd)
}

// FakeKey sends `fake-key <keys>`, passing keys through unescaped.
func (c *Channel) FakeKey(keys string) error {
	return c.Send(FakeKeyCommand(keys))
}

// SendCommand sends cmd to the channel named by QUTE_FIFO in the current
// process environment. The variable is read on every call.
func SendCommand(cmd string) error {
	c, err := FromEnv(quteenv.FromProcess())
	if err != nil {
		return err
	}
	return c.Send(cmd)
}

// EnterMode sends `enter-mode <mode>` through the process's channel.
func EnterMode(m Mode) error {
	cmd, err := EnterModeCommand(m)
	if err != nil {
		return err
	}
	return SendCommand(cmd)
}

// FakeKey sends `fake-key <keys>` through the process's channel.
func FakeKey(keys string) error {
	return SendCommand(FakeKeyCommand(keys))
}
