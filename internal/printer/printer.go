// Package printer formats propctl output.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Out and ErrOut are swapped by tests.
var (
	Out    io.Writer = os.Stdout
	ErrOut io.Writer = os.Stderr
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	green.Fprintf(Out, "✓ %s", fmt.Sprintf(format, a...))
}

func Info(format string, a ...any) {
	fmt.Fprintf(Out, format, a...)
}

func Warning(format string, a ...any) {
	yellow.Fprintf(Out, "⚠️  %s", fmt.Sprintf(format, a...))
}

func Step(format string, a ...any) {
	cyan.Fprintf(Out, "→ %s", fmt.Sprintf(format, a...))
}

// Error prints title, explanation and suggestions to ErrOut and returns a
// short error for cobra, which is configured not to print it again.
func Error(title, explanation string, suggestions ...string) error {
	red.Fprintf(ErrOut, "%s\n\n", title)
	if explanation != "" {
		fmt.Fprintf(ErrOut, "%s\n", explanation)
	}
	if len(suggestions) > 0 {
		fmt.Fprintf(ErrOut, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(ErrOut, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(ErrOut, "Either:\n")
			for i, s := range suggestions {
				fmt.Fprintf(ErrOut, "  %d. %s\n", i+1, s)
			}
		}
	}
	return fmt.Errorf("%s", strings.TrimSpace(title))
}
