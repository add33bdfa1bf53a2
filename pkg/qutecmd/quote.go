// SPDX-License-Identifier: MPL-2.0

package qutecmd

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// QuoteArg quotes s so qutebrowser's command-line splitter, which follows
// POSIX shell word rules, reads it back as a single argument. Plain words are
// returned unchanged. Send and FakeKey never quote on their own.
func QuoteArg(s string) (string, error) {
	return syntax.Quote(s, syntax.LangPOSIX)
}

// JoinArgs quotes each argument with QuoteArg and joins them with spaces.
func JoinArgs(args ...string) (string, error) {
	quoted := make([]string, len(args))
	for i, a := range args {
		q, err := QuoteArg(a)
		if err != nil {
			return "", err
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}
