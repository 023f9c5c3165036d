// Package ui provides semantic text formatting for CLI output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or colors are unavailable, text decorations are used instead:
// `backticks` for Code, 'quotes' for Highlight, (parentheses) for Muted.
//
//	ui.SuccessLine("Password copied to clipboard")
//	ui.HintLine("Run " + ui.Code.Sprint("walkpwd init") + " first")
package ui
