// Package cmd is the top-level "driver" package for the Rune front-end: it
// contains the functionality for parsing command-line arguments and running
// the parse and constant-evaluation phases over source files.
package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"

	"github.com/evelant/rune/common"
	"github.com/evelant/rune/report"
)

// Execute is the main entry point for the `rune` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("rune", "rune is a tool for working with Rune source code", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "parse and constant-check source code", true)
	checkCmd.AddPrimaryArg("file-path", "the path to the file to check", true)
	checkCmd.AddStringArg("option", "O", "a compiler option of the form `name=value`", false)

	cli.AddSubcommand("version", "print the Rune version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportFatal(err.Error())
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		report.InitReporter(report.LogLevelVerbose)
		report.DisplayInfoMessage("Rune Version", common.RuneVersion)
	}
}

// logLevelFromName converts a log level selector value to its enumerated log
// level.
func logLevelFromName(name string) int {
	switch name {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}
