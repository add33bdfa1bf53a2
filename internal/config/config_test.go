// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/qutekit/qutekit/internal/issue"
	"github.com/qutekit/qutekit/pkg/types"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := FilePath(dir)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme auto, got %s", cfg.UI.ColorScheme)
	}
	if cfg.Output.Format != OutputText {
		t.Errorf("expected default output format text, got %s", cfg.Output.Format)
	}
	if cfg.Log.Level != LogWarn {
		t.Errorf("expected default log level warn, got %s", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/test-xdg-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if want := filepath.Join("/tmp/test-xdg-config", AppName); dir != want {
		t.Errorf("ConfigDir() = %s, want %s", dir, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", AppName); dir != want {
		t.Errorf("ConfigDir() = %s, want %s", dir, want)
	}
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("loadWithOptions() error: %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want none", path)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestLoad_FromCUEFile(t *testing.T) {
	dir := t.TempDir()
	want := writeConfig(t, dir, `
ui: {
	verbose: true
	color_scheme: "light"
}
output: format: "yaml"
`)

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error: %v", err)
	}
	if path != want {
		t.Errorf("resolved path = %q, want %q", path, want)
	}
	if !cfg.UI.Verbose || cfg.UI.ColorScheme != ColorSchemeLight || cfg.Output.Format != OutputYAML {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.Log.Level != LogWarn {
		t.Errorf("unset key should keep default, got log level %q", cfg.Log.Level)
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `output: format: "xml"`)

	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("expected schema violation error")
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error should be *issue.ActionableError, got %T", err)
	}
	if ae.Issue != issue.ConfigLoadFailedId || ae.ExitCode != types.ExitUsage {
		t.Errorf("ActionableError = %+v", ae)
	}
	if !strings.Contains(err.Error(), "output.format") {
		t.Errorf("error should name the field path, got: %v", err)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `fifo: "/tmp/x"`)

	if _, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir}); err == nil {
		t.Fatal("closed schema should reject unknown fields")
	}
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.cue")

	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: missing})
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Fatalf("error = %v, want config file not found", err)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `log: level: "debug"`)

	cfg, resolved, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("loadWithOptions() error: %v", err)
	}
	if resolved != path || cfg.Log.Level != LogDebug {
		t.Errorf("resolved = %q, level = %q", resolved, cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `output: format: "yaml"`)
	t.Setenv("QUTEKIT_OUTPUT_FORMAT", "json")
	t.Setenv("QUTEKIT_UI_VERBOSE", "true")

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error: %v", err)
	}
	if cfg.Output.Format != OutputJSON {
		t.Errorf("env override ignored: format = %q", cfg.Output.Format)
	}
	if !cfg.UI.Verbose {
		t.Error("env override ignored: verbose = false")
	}
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	t.Setenv("QUTEKIT_LOG_LEVEL", "loud")

	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("error = %v, want ErrInvalidLogLevel", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := loadWithOptions(ctx, LoadOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	cfg := &Config{
		UI:     UIConfig{Verbose: true, ColorScheme: ColorSchemeDark},
		Output: OutputConfig{Format: OutputTOML},
		Log:    LogConfig{Level: LogInfo},
	}
	dir := t.TempDir()
	writeConfig(t, dir, GenerateCUE(cfg))

	got, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("generated CUE does not load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestProvider(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `ui: color_scheme: "dark"`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil || cfg.UI.ColorScheme != ColorSchemeDark {
		t.Fatalf("Load() = %+v, %v", cfg, err)
	}

	resolved, err := Resolve(LoadOptions{ConfigDirPath: dir})
	if err != nil || resolved != path {
		t.Errorf("Resolve() = %q, %v; want %q", resolved, err, path)
	}
	resolved, err = Resolve(LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil || resolved != "" {
		t.Errorf("Resolve() without file = %q, %v", resolved, err)
	}
}
