// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/qutekit/qutekit/internal/config"
	"github.com/qutekit/qutekit/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the global flag values of one command tree.
type rootFlags struct {
	verbose bool
	cfgFile string
	format  string
}

// NewRootCommand builds the qutekit command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "qutekit",
		Short: "Helpers for qutebrowser userscripts",
		Long: TitleStyle.Render("qutekit") + SubtitleStyle.Render(" - Helpers for qutebrowser userscripts") + `

qutebrowser starts userscripts with a set of QUTE_* environment variables
and a command channel (QUTE_FIFO) the script can write commands to. qutekit
reads that context and sends commands back, so shell userscripts do not have
to.

` + SubtitleStyle.Render("Examples:") + `
  qutekit context               Show how the userscript was launched
  qutekit enter-mode insert     Switch qutebrowser to insert mode
  qutekit fake-key '<Escape>'   Send a key press to the current page
  qutekit send open -t URL      Send any qutebrowser command`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.applySettings(cmd.Context(), flags)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "config file (default is $HOME/.config/qutekit/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&flags.format, "format", "f", "", "output format: text, json, yaml or toml")

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: types.ExitUsage, Err: err}
	})

	rootCmd.AddCommand(newContextCommand(app))
	rootCmd.AddCommand(newSendCommand(app))
	rootCmd.AddCommand(newEnterModeCommand(app))
	rootCmd.AddCommand(newFakeKeyCommand(app))
	rootCmd.AddCommand(newChannelCommand(app))
	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// applySettings loads the configuration and lays the global flags over it.
// A broken config file is reported as a warning and defaults are used, so
// userscripts keep working; `qutekit config show` reports the failure.
func (a *App) applySettings(ctx context.Context, flags *rootFlags) error {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.cfgFile})
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, flags.verbose))
		cfg = config.DefaultConfig()
	}

	s := settings{
		cfg:        cfg,
		configPath: flags.cfgFile,
		verbose:    flags.verbose || cfg.UI.Verbose,
		format:     cfg.Output.Format,
	}
	if flags.format != "" {
		s.format = config.OutputFormat(flags.format)
		if err := s.format.Validate(); err != nil {
			return &ExitError{Code: types.ExitUsage, Err: err}
		}
	}
	s.logger = newLogger(a.stderr, s.verbose, cfg.Log.Level)

	a.settings = s
	return nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Main runs the CLI against the process arguments and returns the exit code.
func Main() int {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(types.ExitFailure)
	}

	// fang overrides rootCmd.Version, so the version goes in as an option.
	err = fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	return int(exitCodeOf(err))
}

// Execute runs the CLI and exits with its status. Called by main.main().
func Execute() {
	os.Exit(Main())
}
