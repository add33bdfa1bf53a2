// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newChannelCommand creates the `qutekit channel` command.
func newChannelCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "channel",
		Short: "Show the command channel and its delivery timing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := app.channel()
			if err != nil {
				return app.fail("inspect command channel", err)
			}
			isPipe, err := ch.IsNamedPipe()
			if err != nil {
				return app.fail("inspect command channel", err)
			}

			kind := "regular file"
			if isPipe {
				kind = "named pipe"
			}

			fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Path"), SuccessStyle.Render(string(ch.Path())))
			fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Kind"), SuccessStyle.Render(kind))
			fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Delivery"), SuccessStyle.Render(ch.Delivery().String()))
			fmt.Fprintf(app.stdout, "  %s\n", SubtitleStyle.Render(ch.Delivery().Describe()))
			return nil
		},
	}
}
