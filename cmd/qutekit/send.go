// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/qutekit/qutekit/pkg/qutecmd"

	"github.com/spf13/cobra"
)

// newSendCommand creates the `qutekit send` command.
func newSendCommand(app *App) *cobra.Command {
	var quote bool

	cmd := &cobra.Command{
		Use:   "send [--quote] <words...>",
		Short: "Send a command to qutebrowser",
		Long: `Send a command line to qutebrowser through the QUTE_FIFO channel.

The words are joined with single spaces. With --quote every word is quoted
first, so arguments containing spaces or quotes reach qutebrowser intact.`,
		Example: `  qutekit send open -t https://example.com
  qutekit send --quote message-info "hello world"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			if quote {
				var err error
				if line, err = qutecmd.JoinArgs(args...); err != nil {
					return app.fail("quote command", err)
				}
			}
			return app.sendLine("send command", line)
		},
	}
	cmd.Flags().BoolVar(&quote, "quote", false, "quote each word before sending")
	// Flags after the first word belong to the qutebrowser command.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// newEnterModeCommand creates the `qutekit enter-mode` command.
func newEnterModeCommand(app *App) *cobra.Command {
	validModes := make([]string, 0, len(qutecmd.Modes()))
	for _, m := range qutecmd.Modes() {
		validModes = append(validModes, m.String())
	}

	return &cobra.Command{
		Use:       "enter-mode <mode>",
		Short:     "Switch qutebrowser to another mode",
		Long:      "Switch qutebrowser to one of: " + strings.Join(validModes, ", ") + ".",
		ValidArgs: validModes,
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := qutecmd.ParseMode(args[0])
			if err != nil {
				return app.fail("enter mode", err)
			}
			line, err := qutecmd.EnterModeCommand(mode)
			if err != nil {
				return app.fail("enter mode", err)
			}
			return app.sendLine("enter mode", line)
		},
	}
}

// newFakeKeyCommand creates the `qutekit fake-key` command.
func newFakeKeyCommand(app *App) *cobra.Command {
	var quote bool

	cmd := &cobra.Command{
		Use:   "fake-key [--quote] <keys>",
		Short: "Send keys to the current page",
		Long: `Send keys to the current page as if they had been typed.

The keys are passed on verbatim, using qutebrowser's key notation
(e.g. '<Ctrl-a>'). With --quote the argument is quoted first, so text
with spaces is typed as one string.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := args[0]
			if quote {
				var err error
				if keys, err = qutecmd.QuoteArg(keys); err != nil {
					return app.fail("quote keys", err)
				}
			}
			return app.sendLine("fake key", qutecmd.FakeKeyCommand(keys))
		},
	}
	cmd.Flags().BoolVar(&quote, "quote", false, "quote the keys before sending")

	return cmd
}

// sendLine writes line plus a newline to the channel, so the commands of
// successive invocations stay on separate lines.
func (a *App) sendLine(operation, line string) error {
	ch, err := a.channel()
	if err != nil {
		return a.fail(operation, err)
	}
	if err := ch.Send(line + "\n"); err != nil {
		return a.fail(operation, err)
	}
	return nil
}
