// SPDX-License-Identifier: MPL-2.0

package quteenv

const (
	// SpawnHints means the userscript was started via hints.
	SpawnHints SpawnMode = "hints"
	// SpawnCommand means the userscript was started via command or key binding.
	SpawnCommand SpawnMode = "command"
)

type (
	// SpawnMode is the value of QUTE_MODE.
	SpawnMode string

	// LaunchContext is how the userscript was launched. The only
	// implementations are *HintsLaunch and *CommandLaunch; use a type switch
	// to reach the mode-specific accessors.
	LaunchContext interface {
		// Mode returns the discriminator this context was resolved from.
		Mode() SpawnMode
		// URL returns the hinted URL or the current page URL.
		URL() (string, error)
		// SelectedText returns the hinted element's text or the page selection.
		SelectedText() (string, error)

		launchContext()
	}

	// HintsLaunch is the context of a userscript started via hints. Only
	// Resolve builds a populated one; the zero value reports every variable
	// as missing.
	HintsLaunch struct {
		env *Env
	}

	// CommandLaunch is the context of a userscript started via command or key
	// binding. Only Resolve builds a populated one; the zero value reports
	// every variable as missing.
	CommandLaunch struct {
		env *Env
	}
)

// String returns the discriminator token.
func (m SpawnMode) String() string { return string(m) }

// Resolve reads QUTE_MODE and returns the matching launch context.
// It fails with a *MissingVariableError when the variable is unset and with
// an *InvalidDiscriminatorError when it holds anything but "hints" or
// "command". The comparison is exact; qutebrowser always sends lowercase.
func (e *Env) Resolve() (LaunchContext, error) {
	mode, err := e.Require(VarMode)
	if err != nil {
		return nil, err
	}

	switch SpawnMode(mode) {
	case SpawnHints:
		return &HintsLaunch{env: e}, nil
	case SpawnCommand:
		return &CommandLaunch{env: e}, nil
	default:
		return nil, &InvalidDiscriminatorError{Name: VarMode, Value: mode}
	}
}

// Resolve snapshots the process environment and resolves its launch context.
func Resolve() (LaunchContext, error) {
	return FromProcess().Resolve()
}

// MustResolve is like Resolve but panics with the typed error on failure.
// A userscript started outside qutebrowser has nothing sensible to do, so
// scripts that prefer to abort immediately can use this instead of
// propagating the error.
func MustResolve() LaunchContext {
	lc, err := Resolve()
	if err != nil {
		panic(err)
	}
	return lc
}

// Mode returns SpawnHints.
func (*HintsLaunch) Mode() SpawnMode { return SpawnHints }

// URL returns the URL selected via hints.
func (h *HintsLaunch) URL() (string, error) { return h.env.URL() }

// SelectedText returns the plain text of the element selected via hints.
func (h *HintsLaunch) SelectedText() (string, error) { return h.env.Require(VarSelectedText) }

// SelectedHTML returns the HTML of the element selected via hints.
func (h *HintsLaunch) SelectedHTML() (string, error) { return h.env.Require(VarSelectedHTML) }

// Env returns the snapshot this context was resolved from.
func (h *HintsLaunch) Env() *Env { return h.env }

func (*HintsLaunch) launchContext() {}

// Mode returns SpawnCommand.
func (*CommandLaunch) Mode() SpawnMode { return SpawnCommand }

// URL returns the URL of the current page.
func (c *CommandLaunch) URL() (string, error) { return c.env.URL() }

// Title returns the title of the current page.
func (c *CommandLaunch) Title() (string, error) { return c.env.Require(VarTitle) }

// SelectedText returns the text currently selected on the page.
func (c *CommandLaunch) SelectedText() (string, error) { return c.env.Require(VarSelectedText) }

// Count returns the count from the :spawn command running the userscript.
// The value is passed through unparsed.
func (c *CommandLaunch) Count() (string, error) { return c.env.Require(VarCount) }

// Env returns the snapshot this context was resolved from.
func (c *CommandLaunch) Env() *Env { return c.env }

func (*CommandLaunch) launchContext() {}
