// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/qutekit/qutekit/internal/config"
	"github.com/qutekit/qutekit/pkg/qutecmd"
	"github.com/qutekit/qutekit/pkg/quteenv"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. Every Cobra handler
	// receives an App and reads the environment, configuration and output
	// streams through it.
	App struct {
		Config ConfigProvider
		Env    EnvSource
		stdout io.Writer
		stderr io.Writer

		// Populated by the root command before any subcommand runs.
		settings settings
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Env    EnvSource
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// EnvSource returns the launch environment snapshot for one invocation.
	EnvSource func() *quteenv.Env

	// settings is the effective per-invocation configuration after flags
	// have been applied over the loaded config.
	settings struct {
		cfg        *config.Config
		configPath string
		verbose    bool
		format     config.OutputFormat
		logger     *log.Logger
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Env == nil {
		deps.Env = quteenv.FromProcess
	}

	return &App{
		Config: deps.Config,
		Env:    deps.Env,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		settings: settings{
			cfg:    config.DefaultConfig(),
			format: config.OutputText,
			logger: newLogger(deps.Stderr, false, config.LogWarn),
		},
	}, nil
}

// newLogger returns the stderr logger. verbose forces debug level.
func newLogger(w io.Writer, verbose bool, level config.LogLevel) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "qutekit"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return logger
	}
	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		lvl = log.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// channel resolves the command channel from the launch environment.
func (a *App) channel() (*qutecmd.Channel, error) {
	return qutecmd.FromEnv(a.Env(), qutecmd.WithLogger(a.settings.logger))
}
