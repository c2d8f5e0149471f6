package report

import (
	"fmt"
	"os"
)

// ReportCompileError reports a compilation error: ie. erroneous input code.
// The span may be nil, in which case no position information or source excerpt
// is printed.
func ReportCompileError(src *Source, span *Span, message string, args ...interface{}) {
	if rep.displays(LogLevelError) {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayCompileMessage("error", src, span, fmt.Sprintf(message, args...))
	}
}

// ReportCompileWarning reports a compilation warning.  The arguments are of
// the same form as those to ReportCompileError.
func ReportCompileWarning(src *Source, span *Span, message string, args ...interface{}) {
	if rep.displays(LogLevelWarn) {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayCompileMessage("warning", src, span, fmt.Sprintf(message, args...))
	}
}

// ReportStdError reports a non-fatal, standard Go error with no position
// information: eg. a file that could not be read.
func ReportStdError(name string, err error) {
	if rep.displays(LogLevelError) {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayStdError(name, err)
	}
}

// ReportFatal reports a fatal error and exits the program.  These are expected
// errors that generally result from invalid configuration of some form:
// missing manifest, unreadable source file, bad command-line options.
func ReportFatal(message string, args ...interface{}) {
	if rep.displays(LogLevelError) {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// DisplayInfoMessage displays a tagged informational message to the user.
func DisplayInfoMessage(tag, msg string) {
	if rep.displays(LogLevelVerbose) {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayInfoMessage(tag, msg)
	}
}
