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

// Bullets renders items as an indented list, one per line, each formatted with f.
func Bullets(f Formatter, items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("    - ")
		b.WriteString(f.Sprint(item))
		b.WriteString("\n")
	}
	return b.String()
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
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// Semantic formatters for different types of CLI output.
var (
	// Code formats runnable commands. Yellow with color, `backticks` without.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file paths. Yellow with color, undecorated without.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag formats command-line flags. Yellow with color, `backticks` without.
	Flag = Formatter{color.New(color.FgYellow), "`", "`"}

	// Key formats environment key names. Cyan with color, 'single quotes' without.
	Key = Formatter{color.New(color.FgCyan), "'", "'"}

	// Success formats success indicators and messages.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error indicators and messages.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning formats warning indicators and messages.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats hints and directional indicators.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Muted formats secondary text. Gray with color, (parentheses) without.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
