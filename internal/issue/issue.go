// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Catalog identifiers.
const (
	MissingVariableId Id = iota + 1
	InvalidDiscriminatorId
	ChannelUnavailableId
	InvalidModeId
	ConfigLoadFailedId
)

type (
	// Id identifies a catalog page.
	Id int

	// MarkdownMsg is the Markdown body of a catalog page.
	MarkdownMsg string

	// HttpLink is a documentation URL.
	HttpLink string

	// Issue is one catalog page.
	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink  // qutebrowser documentation for this failure
		extLinks []HttpLink  // external links that might be useful for the user
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the page with glamour using the given style ("dark",
// "light", "auto" or a path to a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
		for _, link := range i.extLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
	}
	return render(md.String(), stylePath)
}

const userscriptDocs HttpLink = "https://qutebrowser.org/doc/userscripts.html"

var (
	render = glamour.Render

	missingVariableIssue = &Issue{
		id: MissingVariableId,
		mdMsg: `
# Environment variable not set!

qutebrowser sets a number of ` + "`QUTE_*`" + ` variables before it runs a
userscript. One that this command needs is missing.

## Common causes:
- The script was run directly from a shell instead of by qutebrowser
- The variable only exists in the other launch mode
  (` + "`QUTE_TITLE`" + ` and ` + "`QUTE_COUNT`" + ` are command mode only,
  ` + "`QUTE_SELECTED_HTML`" + ` is hints mode only)
- qutebrowser is too old to provide the variable

## Things you can try:
- Run the script from qutebrowser:
~~~
:spawn --userscript myscript
~~~
- Or fake a launch for debugging:
~~~
$ QUTE_MODE=command QUTE_FIFO=/tmp/fifo qutekit context
~~~`,
		docLinks: []HttpLink{userscriptDocs},
	}

	invalidDiscriminatorIssue = &Issue{
		id: InvalidDiscriminatorId,
		mdMsg: `
# Unknown launch mode!

` + "`QUTE_MODE`" + ` must be either ` + "`hints`" + ` or ` + "`command`" + `.
Any other value means qutebrowser and qutekit disagree about the userscript
protocol.

## Things you can try:
- Upgrade qutekit and qutebrowser to current releases
- Check that nothing in your shell profile overrides ` + "`QUTE_MODE`",
		docLinks: []HttpLink{userscriptDocs},
	}

	channelUnavailableIssue = &Issue{
		id: ChannelUnavailableId,
		mdMsg: `
# Cannot reach qutebrowser!

Commands are written to the file named by ` + "`QUTE_FIFO`" + `. It could not
be opened or written.

## Common causes:
- qutebrowser already removed the FIFO (the script outlived its launch)
- The path belongs to another user
- On Windows the channel is a regular file that is read after the script
  exits, so it must not be deleted while the script runs

## Things you can try:
- Inspect the channel:
~~~
$ qutekit channel
~~~
- Run the script in the foreground so it finishes before qutebrowser
  cleans up`,
		docLinks: []HttpLink{userscriptDocs},
	}

	invalidModeIssue = &Issue{
		id: InvalidModeId,
		mdMsg: `
# Invalid mode!

Userscripts can switch qutebrowser into these modes:

- **normal**
- **insert**
- **caret**
- **passthrough**

## Example:
~~~
$ qutekit enter-mode insert
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the qutekit configuration file.

## Configuration file locations:
- Linux: ~/.config/qutekit/config.cue
- macOS: ~/Library/Application Support/qutekit/config.cue
- Windows: %APPDATA%\qutekit\config.cue

## Things you can try:
- Show the effective configuration:
~~~
$ qutekit config show
~~~
- Remove the config file to use defaults

## Example configuration:
~~~cue
ui: {
  verbose: false
  color_scheme: "auto"
}
output: format: "text"
log: level: "warn"
~~~`,
	}

	issues = map[Id]*Issue{
		missingVariableIssue.Id():      missingVariableIssue,
		invalidDiscriminatorIssue.Id(): invalidDiscriminatorIssue,
		channelUnavailableIssue.Id():   channelUnavailableIssue,
		invalidModeIssue.Id():          invalidModeIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
	}
)

// Values returns every catalog page ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, id := range slices.Sorted(maps.Keys(issues)) {
		out = append(out, issues[id])
	}
	return out
}

// Get returns the page for id, or nil if there is none.
func Get(id Id) *Issue {
	return issues[id]
}
