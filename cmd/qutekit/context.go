// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/qutekit/qutekit/internal/config"
	"github.com/qutekit/qutekit/pkg/quteenv"
	"github.com/qutekit/qutekit/pkg/types"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type (
	// contextReport is the launch context as printed by `qutekit context`.
	// Unset variables are nil and left out of structured output.
	contextReport struct {
		Mode            quteenv.SpawnMode `json:"mode" yaml:"mode" toml:"mode"`
		URL             *string           `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
		Title           *string           `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
		SelectedText    *string           `json:"selected_text,omitempty" yaml:"selected_text,omitempty" toml:"selected_text,omitempty"`
		SelectedHTML    *string           `json:"selected_html,omitempty" yaml:"selected_html,omitempty" toml:"selected_html,omitempty"`
		Count           *string           `json:"count,omitempty" yaml:"count,omitempty" toml:"count,omitempty"`
		UserAgent       *string           `json:"user_agent,omitempty" yaml:"user_agent,omitempty" toml:"user_agent,omitempty"`
		HTMLFile        *string           `json:"html_file,omitempty" yaml:"html_file,omitempty" toml:"html_file,omitempty"`
		TextFile        *string           `json:"text_file,omitempty" yaml:"text_file,omitempty" toml:"text_file,omitempty"`
		FIFO            *string           `json:"fifo,omitempty" yaml:"fifo,omitempty" toml:"fifo,omitempty"`
		ConfigDir       *string           `json:"config_dir,omitempty" yaml:"config_dir,omitempty" toml:"config_dir,omitempty"`
		DataDir         *string           `json:"data_dir,omitempty" yaml:"data_dir,omitempty" toml:"data_dir,omitempty"`
		DownloadDir     *string           `json:"download_dir,omitempty" yaml:"download_dir,omitempty" toml:"download_dir,omitempty"`
		CommandlineText *string           `json:"commandline_text,omitempty" yaml:"commandline_text,omitempty" toml:"commandline_text,omitempty"`
	}

	// reportField is one row of the text rendering.
	reportField struct {
		name  types.EnvVarName
		value *string
	}
)

// newContextCommand creates the `qutekit context` command.
func newContextCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "context",
		Short: "Show how the userscript was launched",
		Long: `Resolve the launch context from the QUTE_* environment and print it.

Variables qutebrowser did not set are shown as absent. An unset or unknown
QUTE_MODE is an error, since nothing else can be interpreted without it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := buildContextReport(app.Env())
			if err != nil {
				return app.fail("resolve launch context", err)
			}
			if err := writeContextReport(app.stdout, app.settings.format, report); err != nil {
				return app.fail("print launch context", err)
			}
			return nil
		},
	}
}

// buildContextReport resolves env and collects every value it holds. Only
// the discriminator is required.
func buildContextReport(env *quteenv.Env) (*contextReport, error) {
	lc, err := env.Resolve()
	if err != nil {
		return nil, err
	}

	r := &contextReport{Mode: lc.Mode()}

	r.URL, err = optional(lc.URL())
	if err != nil {
		return nil, err
	}
	r.SelectedText, err = optional(lc.SelectedText())
	if err != nil {
		return nil, err
	}

	switch lc := lc.(type) {
	case *quteenv.HintsLaunch:
		if r.SelectedHTML, err = optional(lc.SelectedHTML()); err != nil {
			return nil, err
		}
	case *quteenv.CommandLaunch:
		if r.Title, err = optional(lc.Title()); err != nil {
			return nil, err
		}
		if r.Count, err = optional(lc.Count()); err != nil {
			return nil, err
		}
	}

	aux := []struct {
		dst **string
		get func() (string, error)
	}{
		{&r.UserAgent, env.UserAgent},
		{&r.HTMLFile, pathString(env.HTMLFile)},
		{&r.TextFile, pathString(env.TextFile)},
		{&r.FIFO, pathString(env.FIFO)},
		{&r.ConfigDir, pathString(env.ConfigDir)},
		{&r.DataDir, pathString(env.DataDir)},
		{&r.DownloadDir, pathString(env.DownloadDir)},
		{&r.CommandlineText, env.CommandlineText},
	}
	for _, a := range aux {
		if *a.dst, err = optional(a.get()); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// optional turns a missing variable into nil and passes other errors on.
func optional(v string, err error) (*string, error) {
	if errors.Is(err, quteenv.ErrMissingVariable) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func pathString(get func() (types.FilesystemPath, error)) func() (string, error) {
	return func() (string, error) {
		p, err := get()
		return string(p), err
	}
}

// fields lists the report rows in display order, with their variable names.
func (r *contextReport) fields() []reportField {
	return []reportField{
		{quteenv.VarURL, r.URL},
		{quteenv.VarTitle, r.Title},
		{quteenv.VarSelectedText, r.SelectedText},
		{quteenv.VarSelectedHTML, r.SelectedHTML},
		{quteenv.VarCount, r.Count},
		{quteenv.VarUserAgent, r.UserAgent},
		{quteenv.VarHTML, r.HTMLFile},
		{quteenv.VarText, r.TextFile},
		{quteenv.VarFIFO, r.FIFO},
		{quteenv.VarConfigDir, r.ConfigDir},
		{quteenv.VarDataDir, r.DataDir},
		{quteenv.VarDownloadDir, r.DownloadDir},
		{quteenv.VarCommandlineText, r.CommandlineText},
	}
}

func writeContextReport(w io.Writer, format config.OutputFormat, r *contextReport) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputTOML:
		return toml.NewEncoder(w).Encode(r)
	default:
		return writeContextText(w, r)
	}
}

// writeContextText prints one styled line per variable of the launch mode.
// Variables that belong to the other launch mode are skipped.
func writeContextText(w io.Writer, r *contextReport) error {
	if _, err := fmt.Fprintf(w, "%s %s\n\n", TitleStyle.Render("Launch mode:"), SuccessStyle.Render(string(r.Mode))); err != nil {
		return err
	}
	for _, f := range r.fields() {
		if !appliesTo(f.name, r.Mode) {
			continue
		}
		value := SubtitleStyle.Render("(not set)")
		if f.value != nil {
			value = SuccessStyle.Render(fmt.Sprintf("%q", *f.value))
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render(string(f.name)), value); err != nil {
			return err
		}
	}
	return nil
}

// appliesTo reports whether qutebrowser sets name in the given launch mode.
func appliesTo(name types.EnvVarName, mode quteenv.SpawnMode) bool {
	switch name {
	case quteenv.VarSelectedHTML:
		return mode == quteenv.SpawnHints
	case quteenv.VarTitle, quteenv.VarCount:
		return mode == quteenv.SpawnCommand
	default:
		return true
	}
}
