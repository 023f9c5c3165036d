package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.Sprint(fmt.Sprintf(format, a...))
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code formats runnable commands. Yellow with color, `backticks` without.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file or directory paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Success formats success indicators.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error indicators.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning formats warning indicators.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats hints and directional arrows.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats entry names and other user values. Cyan with color, 'quotes' without.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary text. Gray with color, (parentheses) without.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Status line markers.
const (
	markSuccess = "✓"
	markError   = "✗"
	markWarning = "⚠"
	markHint    = "→"
)

// SuccessLine returns "✓ msg".
func SuccessLine(msg string) string {
	return Success.Sprint(markSuccess) + " " + msg
}

// ErrorLine returns "✗ msg".
func ErrorLine(msg string) string {
	return Error.Sprint(markError) + " " + msg
}

// WarningLine returns "⚠ msg".
func WarningLine(msg string) string {
	return Warning.Sprint(markWarning) + " " + msg
}

// HintLine returns "→ msg".
func HintLine(msg string) string {
	return Info.Sprint(markHint) + " " + msg
}

// Lines joins status lines with newlines, dropping empty ones.
func Lines(lines ...string) string {
	var kept []string
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

// Bullets renders names as an indented list, one per line.
func Bullets(names []string) string {
	var b strings.Builder
	for _, name := range names {
		b.WriteString("  - ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	return b.String()
}
