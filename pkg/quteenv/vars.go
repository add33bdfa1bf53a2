// SPDX-License-Identifier: MPL-2.0

package quteenv

import "github.com/qutekit/qutekit/pkg/types"

// Variables set by qutebrowser when it spawns a userscript.
const (
	// VarMode selects the launch mode: "hints" or "command".
	VarMode types.EnvVarName = "QUTE_MODE"
	// VarURL is the hinted URL in hints mode and the page URL in command mode.
	VarURL types.EnvVarName = "QUTE_URL"
	// VarSelectedText is the hinted element's text or the page selection.
	VarSelectedText types.EnvVarName = "QUTE_SELECTED_TEXT"
	// VarSelectedHTML is the hinted element's HTML (hints mode only).
	VarSelectedHTML types.EnvVarName = "QUTE_SELECTED_HTML"
	// VarTitle is the page title (command mode only).
	VarTitle types.EnvVarName = "QUTE_TITLE"
	// VarCount is the count given to :spawn (command mode only).
	VarCount types.EnvVarName = "QUTE_COUNT"
	// VarUserAgent is the browser's current user agent.
	VarUserAgent types.EnvVarName = "QUTE_USER_AGENT"
	// VarHTML is the path of a temporary file holding the page HTML.
	VarHTML types.EnvVarName = "QUTE_HTML"
	// VarText is the path of a temporary file holding the page plain text.
	VarText types.EnvVarName = "QUTE_TEXT"
	// VarFIFO is the path of the channel commands are written to.
	VarFIFO types.EnvVarName = "QUTE_FIFO"
	// VarConfigDir is qutebrowser's configuration directory.
	VarConfigDir types.EnvVarName = "QUTE_CONFIG_DIR"
	// VarDataDir is qutebrowser's data directory.
	VarDataDir types.EnvVarName = "QUTE_DATA_DIR"
	// VarDownloadDir is the downloads directory.
	VarDownloadDir types.EnvVarName = "QUTE_DOWNLOAD_DIR"
	// VarCommandlineText is the text currently in qutebrowser's command line.
	VarCommandlineText types.EnvVarName = "QUTE_COMMANDLINE_TEXT"
)

// knownVars lists every variable a snapshot copies, in host documentation order.
var knownVars = []types.EnvVarName{
	VarMode,
	VarURL,
	VarSelectedText,
	VarSelectedHTML,
	VarTitle,
	VarCount,
	VarUserAgent,
	VarHTML,
	VarText,
	VarFIFO,
	VarConfigDir,
	VarDataDir,
	VarDownloadDir,
	VarCommandlineText,
}

// Variables returns the names of all variables a snapshot reads.
func Variables() []types.EnvVarName {
	out := make([]types.EnvVarName, len(knownVars))
	copy(out, knownVars)
	return out
}
