// SPDX-License-Identifier: MPL-2.0

package testutil

import "maps"

// baseHostEnv holds the variables qutebrowser sets in both launch modes.
func baseHostEnv(fifo string) map[string]string {
	return map[string]string{
		"QUTE_URL":              "https://example.com/docs",
		"QUTE_SELECTED_TEXT":    "selected words",
		"QUTE_USER_AGENT":       "Mozilla/5.0 (X11; Linux x86_64) QtWebEngine/6.7 qutebrowser/3.2",
		"QUTE_HTML":             "/tmp/qutebrowser-userscript-html",
		"QUTE_TEXT":             "/tmp/qutebrowser-userscript-text",
		"QUTE_FIFO":             fifo,
		"QUTE_CONFIG_DIR":       "/home/user/.config/qutebrowser",
		"QUTE_DATA_DIR":         "/home/user/.local/share/qutebrowser",
		"QUTE_DOWNLOAD_DIR":     "/home/user/Downloads",
		"QUTE_COMMANDLINE_TEXT": "",
	}
}

// HintsEnv returns the variables of a hints-mode launch writing to fifo.
// Entries in overrides replace or add to the defaults.
func HintsEnv(fifo string, overrides map[string]string) map[string]string {
	env := baseHostEnv(fifo)
	env["QUTE_MODE"] = "hints"
	env["QUTE_SELECTED_HTML"] = `<a href="/docs">selected words</a>`
	maps.Copy(env, overrides)
	return env
}

// CommandEnv returns the variables of a command-mode launch writing to fifo.
// Entries in overrides replace or add to the defaults.
func CommandEnv(fifo string, overrides map[string]string) map[string]string {
	env := baseHostEnv(fifo)
	env["QUTE_MODE"] = "command"
	env["QUTE_TITLE"] = "Example Docs"
	env["QUTE_COUNT"] = "1"
	maps.Copy(env, overrides)
	return env
}

// Without returns a copy of env with keys removed.
func Without(env map[string]string, keys ...string) map[string]string {
	out := maps.Clone(env)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
