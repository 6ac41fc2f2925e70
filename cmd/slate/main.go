package main

import (
	"fmt"
	"os"

	"github.com/oarkflow/log"

	"slate/interpreter-go/pkg/driver"
)

const cliToolVersion = "slate-cli 0.1.0-dev"

// Exit codes follow the sysexits convention: 65 for malformed input, 70 for
// an internal software (runtime) error, 64 for bad usage.
const (
	exitOK      = 0
	exitUsage   = 64
	exitSyntax  = 65
	exitRuntime = 70
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	trace := false
	remaining := args[:0:0]
	for _, arg := range args {
		if arg == "--trace" {
			trace = true
			continue
		}
		remaining = append(remaining, arg)
	}
	logger := newLogger(trace)

	if len(remaining) == 0 {
		return runRepl(logger)
	}

	switch remaining[0] {
	case "--help", "-h":
		printUsage()
		return exitOK
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return exitOK
	case "repl":
		return runRepl(logger)
	case "run":
		if len(remaining) != 2 {
			printUsage()
			return exitUsage
		}
		return runFile(remaining[1], logger)
	default:
		if len(remaining) != 1 {
			printUsage()
			return exitUsage
		}
		return runFile(remaining[0], logger)
	}
}

func runFile(path string, logger *log.Logger) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return exitUsage
	}
	result := driver.Run(source, os.Stdout, driver.WithLogger(logger))
	for _, diagnostic := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, diagnostic)
	}
	switch {
	case result.HadSyntaxError:
		return exitSyntax
	case result.HadRuntimeError:
		return exitRuntime
	default:
		return exitOK
	}
}

func newLogger(trace bool) *log.Logger {
	logger := log.Logger{
		Level:  log.InfoLevel,
		Writer: &log.ConsoleWriter{ColorOutput: true},
	}
	if trace {
		logger.Level = log.DebugLevel
	}
	return &logger
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  slate [--trace] run <file.slate>")
	fmt.Fprintln(os.Stderr, "  slate [--trace] <file.slate>")
	fmt.Fprintln(os.Stderr, "  slate [--trace] repl")
	fmt.Fprintln(os.Stderr, "  slate --version")
}
