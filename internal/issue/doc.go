// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries what qutekit was doing, which variable or path was
// involved, and how to fix it. The catalog in this package holds a Markdown
// page for each failure class a userscript can hit, rendered with glamour.
package issue
