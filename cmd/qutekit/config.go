// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/qutekit/qutekit/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `qutekit config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect qutekit configuration",
		Long: `Inspect qutekit configuration.

Configuration is stored in:
  - Linux: ~/.config/qutekit/config.cue
  - macOS: ~/Library/Application Support/qutekit/config.cue
  - Windows: %APPDATA%\qutekit\config.cue

Every key can be overridden with a QUTEKIT_ environment variable,
e.g. QUTEKIT_OUTPUT_FORMAT=json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.cfgFile})
			if err != nil {
				return app.fail("load configuration", err)
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, flags *rootFlags) error {
	opts := config.LoadOptions{ConfigFilePath: flags.cfgFile}
	cfg, err := app.Config.Load(ctx, opts)
	if err != nil {
		return app.fail("load configuration", err)
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	path, err := config.Resolve(opts)
	if err != nil || path == "" {
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), path)
	}
	fmt.Fprintln(app.stdout)

	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(app.stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(app.stdout, "  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("output"))
	fmt.Fprintf(app.stdout, "  format: %s\n", valueStyle.Render(string(cfg.Output.Format)))
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("log"))
	fmt.Fprintf(app.stdout, "  level: %s\n", valueStyle.Render(string(cfg.Log.Level)))

	return nil
}

func showConfigPath(app *App, flags *rootFlags) error {
	if flags.cfgFile != "" {
		fmt.Fprintf(app.stdout, "Config file: %s\n", flags.cfgFile)
		return nil
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return app.fail("locate configuration", err)
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", config.FilePath(cfgDir))
	return nil
}
