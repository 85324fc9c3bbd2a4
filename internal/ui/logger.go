// Package ui prints colored status lines for long-running commands.
package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	clrDim    = color.New(color.FgHiBlack)
	clrSubtle = color.New(color.FgWhite)
	clrAccent = color.New(color.FgCyan, color.Bold)
	clrBadge  = color.New(color.BgBlue, color.FgWhite, color.Bold)

	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)
)

// Output is where status lines go. color.Output handles Windows consoles.
var Output io.Writer = color.Output

// now is replaced in tests
var now = time.Now

// PrintBanner prints the product header
func PrintBanner(version string) {
	fmt.Fprintln(Output)
	fmt.Fprintf(Output, "  %s %s\n", clrBadge.Sprint(" ◆ CHROMAGEN "), clrDim.Sprint(version))
	fmt.Fprintf(Output, "  %s\n", clrSubtle.Sprint("Palette generation service"))
	fmt.Fprintln(Output)
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	ts := clrDim.Sprint(now().Format("15:04:05"))

	var icon, styledMsg string
	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	fmt.Fprintf(Output, "%s  %s  %s\n", ts, icon, styledMsg)
}

// LogGroupItem prints an aligned "label: value" line
func LogGroupItem(label, value string) {
	fmt.Fprintf(Output, "  %s %s\n", clrDim.Sprintf("%-10s", label+":"), clrAccent.Sprint(value))
}

// LogRequest prints one served API request
func LogRequest(method, path string, status int, d time.Duration) {
	ts := clrDim.Sprint(now().Format("15:04:05"))
	statusClr := clrSuccess
	switch {
	case status >= 500:
		statusClr = clrError
	case status >= 400:
		statusClr = clrWarning
	}
	fmt.Fprintf(Output, "%s  %s  %s %s  %s\n",
		ts,
		statusClr.Sprintf("%d", status),
		clrAccent.Sprintf("%-6s", method),
		clrSubtle.Sprint(path),
		clrDim.Sprint(d.Round(time.Microsecond)))
}

// PrintSeparator prints a subtle horizontal separator
func PrintSeparator() {
	fmt.Fprintln(Output, clrDim.Sprint("  "+strings.Repeat("─", 56)))
}
