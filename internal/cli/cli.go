package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/dfakit/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("dfakit", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
dfakit - Build, combine and inspect deterministic finite automata.

Usage:
  dfakit [options] [DEFS_PATH...]

Arguments:
  DEFS_PATH
    Path to a definitions file or a directory of them, in the
    format selected by -format.

Options:
`)
		flagSet.PrintDefaults()
	}

	defsFlag := flagSet.String("defs", "", "Path to the definitions file or directory.")
	dFlag := flagSet.String("d", "", "Path to the definitions file or directory (shorthand).")
	formatFlag := flagSet.String("format", "hcl", "Definitions format. Options: 'hcl' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of concurrent workers rendering reports.")
	dumpFlag := flagSet.Bool("dump", false, "Print the full transition table of every automaton.")
	dotFlag := flagSet.Bool("dot", false, "Print every automaton as a Graphviz digraph.")
	regexFlag := flagSet.Bool("regex", false, "Print the regular expression equivalent to every automaton.")
	maxRegexFlag := flagSet.Int("max-regex-states", 6, "Largest automaton whose regular expression is printed or verified.")
	emitGoFlag := flagSet.String("emit-go", "", "Write a generated Go matcher per automaton to this file.")
	emitPackageFlag := flagSet.String("emit-package", "automata", "Package name of the file written by -emit-go.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	switch {
	case *defsFlag != "":
		paths = append(paths, *defsFlag)
	case *dFlag != "":
		paths = append(paths, *dFlag)
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Definition paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No definitions path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format := strings.ToLower(*formatFlag)
	if format != "hcl" && format != "yaml" {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'hcl' or 'yaml'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DefsPaths:      paths,
		Format:         format,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
		WorkerCount:    *workersFlag,
		Dump:           *dumpFlag,
		DOT:            *dotFlag,
		Regex:          *regexFlag,
		MaxRegexStates: *maxRegexFlag,
		EmitGo:         *emitGoFlag,
		EmitPackage:    *emitPackageFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
