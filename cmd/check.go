package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"github.com/evelant/rune/ast"
	"github.com/evelant/rune/common"
	"github.com/evelant/rune/compile"
	"github.com/evelant/rune/ir"
	"github.com/evelant/rune/macros"
	"github.com/evelant/rune/report"
	"github.com/evelant/rune/syntax"
)

// execCheckCommand executes the check subcommand and handles all its errors.
func execCheckCommand(result *olive.ArgParseResult, loglevel string) {
	report.InitReporter(logLevelFromName(loglevel))

	filePath, _ := result.PrimaryArg()
	if filepath.Ext(filePath) != common.RuneFileExt {
		report.ReportFatal("`%s` is not a Rune source file", filePath)
	}

	options := &compile.Options{}
	if option, ok := result.Arguments["option"]; ok {
		if err := options.ParseOption(option.(string)); err != nil {
			report.ReportFatal(err.Error())
		}
	}

	// a manifest next to the checked file may enable further options
	manifestPath := filepath.Join(filepath.Dir(filePath), common.RuneModuleFileName)
	if _, err := os.Stat(manifestPath); err == nil {
		manifest, err := compile.LoadManifest(manifestPath)
		if err != nil {
			report.ReportFatal(err.Error())
		}

		options.Macros = options.Macros || manifest.Options.Macros
	}

	c := NewChecker(filePath, options)
	if c.Check() {
		report.DisplayInfoMessage("Check Succeeded", filePath)
	} else {
		os.Exit(1)
	}
}

// Checker runs the front-end phases over a single source file: parsing, use
// resolution, macro expansion of item-position macro calls, and constant
// evaluation of `const` initializers.
type Checker struct {
	// The path to the file being checked.
	filePath string

	// The options of this check.
	options *compile.Options

	// The source being checked.
	src *report.Source

	// The compilation unit of the checked file.
	unit *compile.Unit

	// The compilation context of the checked file.  The CLI installs no
	// native macros: handlers come from the embedding application.
	context *compile.Context
}

// NewChecker creates a new checker for the given file.
func NewChecker(filePath string, options *compile.Options) *Checker {
	return &Checker{
		filePath: filePath,
		options:  options,
		unit:     compile.NewUnit(),
		context:  compile.NewContext(),
	}
}

// Check runs all the front-end phases and reports any errors.  It returns
// whether the file checked cleanly.
func (c *Checker) Check() bool {
	text, err := os.ReadFile(c.filePath)
	if err != nil {
		report.ReportStdError(c.filePath, err)
		return false
	}

	c.src = report.NewSource(c.filePath, string(text))

	file, err := ast.ParseText(c.src)
	if err != nil {
		c.reportError(err)
		return false
	}

	if err := c.checkFile(file); err != nil {
		c.reportError(err)
		return false
	}

	return true
}

// checkFile runs use resolution, macro expansion, and constant evaluation
// over the items of a parsed file.
func (c *Checker) checkFile(file *ast.File) error {
	root := compile.NewItem()
	macroCtx := macros.NewMacroContext()

	for _, entry := range file.Items {
		switch item := entry.Item.(type) {
		case *ast.ItemUse:
			if err := c.unit.ProcessUse(root, item); err != nil {
				return err
			}
		case *ast.ItemMacroCall:
			mc := &compile.MacroCompiler{
				Item:     root,
				MacroCtx: macroCtx,
				Options:  c.options,
				Context:  c.context,
				Unit:     c.unit,
			}

			if _, err := compile.EvalMacro(mc, item.Call, ast.ParseItem); err != nil {
				return err
			}
		case *ast.ItemConst:
			lowered, err := compile.LowerConst(item.Value)
			if err != nil {
				return err
			}

			value, err := ir.NewInterpreter().Eval(lowered, ir.Used)
			if err != nil {
				return err
			}

			report.DisplayInfoMessage("Constant", fmt.Sprintf("%s = %v", item.Name.Value, value))
		}
	}

	return nil
}

// reportError renders a front-end error with its span when one is available.
func (c *Checker) reportError(err error) {
	switch e := err.(type) {
	case *syntax.ParseError:
		report.ReportCompileError(c.src, &e.Span, e.Message)
	case *compile.Error:
		report.ReportCompileError(c.src, &e.Span, e.Message)
	case *ir.EvalError:
		report.ReportCompileError(c.src, &e.Sp, e.Message)
	case *ir.BreakOutcome:
		report.ReportCompileError(c.src, &e.Sp, "constant evaluation broke control flow")
	default:
		report.ReportStdError(c.filePath, err)
	}
}
