package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/oarkflow/log"

	"slate/interpreter-go/pkg/driver"
)

const replPrompt = "> "

// runRepl reads one statement stream per line. Errors are reported and the
// session continues; global bindings persist from line to line.
func runRepl(logger *log.Logger) int {
	session := driver.NewSession(os.Stdout, driver.WithLogger(logger))
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Fprint(os.Stdout, replPrompt)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			result := session.Run([]byte(line))
			for _, diagnostic := range result.Diagnostics {
				fmt.Fprintln(os.Stderr, diagnostic)
			}
		}
		fmt.Fprint(os.Stdout, replPrompt)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read stdin: %v\n", err)
		return 1
	}
	fmt.Fprintln(os.Stdout)
	return exitOK
}
