package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	WarnColorFG  = pterm.FgYellow
	WarnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG = pterm.FgRed
	ErrorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG  = pterm.FgLightGreen
	InfoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
)

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
}

// displayStdError displays a standard Go error.
func displayStdError(name string, err error) {
	ErrorStyleBG.Print("Error")
	ErrorColorFG.Printf(" %s: %s\n", name, err)
}

// displayInfoMessage displays a tagged informational message.
func displayInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func displayCompileMessage(label string, src *Source, span *Span, message string) {
	if span == nil {
		fmt.Printf("%s: %s: %s\n\n", src.Name, label, message)
		return
	}

	startLn, startCol := src.LineCol(span.Start)

	fmt.Printf("%s:%d:%d: ", src.Name, startLn+1, startCol+1)
	if label == "error" {
		ErrorColorFG.Print(label)
	} else {
		WarnColorFG.Print(label)
	}
	fmt.Printf(": %s\n\n", message)

	displaySourceText(src, span)
}

// displaySourceText displays the segment of source text selected by a span
// with the spanned region underlined.
func displaySourceText(src *Source, span *Span) {
	startLn, startCol := src.LineCol(span.Start)
	endLn, endCol := src.LineCol(span.End)

	// A zero-width span still underlines one caret so the location is visible.
	if startLn == endLn && startCol == endCol {
		endCol++
	}

	// Calculate the maximum line number length and the line number format.
	maxLineNumLen := len(strconv.Itoa(endLn + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for ln := startLn; ln <= endLn; ln++ {
		line := strings.ReplaceAll(src.Line(ln), "\t", "    ")

		// Print the line number, separator bar, and the source line itself.
		fmt.Printf(lineNumFmtStr, ln+1)
		fmt.Println(line)

		// Print the lead-in for the caret underlining.
		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// Underlining starts at the start column on the first line and at
		// column zero on every continuation line; it runs to the end column on
		// the last line and to the end of the line on every other line.
		carretStart := 0
		if ln == startLn {
			carretStart = startCol
		}

		carretEnd := len(line)
		if ln == endLn {
			carretEnd = endCol
		}

		if carretEnd < carretStart {
			carretEnd = carretStart
		}

		fmt.Print(strings.Repeat(" ", carretStart))
		fmt.Println(strings.Repeat("^", carretEnd-carretStart))
	}

	fmt.Println()
}
