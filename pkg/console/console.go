// Package console prints coloured status lines for the command-line tools.
package console

import (
	"io"

	"github.com/fatih/color"
)

var (
	// Output and ErrOutput default to the colour-aware writers from fatih/color.
	Output    io.Writer = color.Output
	ErrOutput io.Writer = color.Error

	cyan   = color.New(color.FgCyan, color.Bold)
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	white  = color.New(color.FgWhite)
)

func Header(title string) {
	cyan.Fprintf(Output, "== %s ==\n", title)
}

// Field prints an aligned "name: value" line.
func Field(name string, value any) {
	white.Fprintf(Output, "  %-10s %v\n", name+":", value)
}

func Info(format string, args ...any) {
	yellow.Fprintf(Output, format+"\n", args...)
}

func Success(format string, args ...any) {
	green.Fprintf(Output, "✓ "+format+"\n", args...)
}

func Error(err error) {
	red.Fprintf(ErrOutput, "✗ %v\n", err)
}
