// Command slate-ast parses Slate sources and writes the syntax tree to
// stdout, as indented JSON by default or as s-expressions with --sexpr.
// It exists for debugging the front end and for generating AST fixtures.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/oarkflow/json"

	"slate/interpreter-go/pkg/ast"
	"slate/interpreter-go/pkg/lexer"
	"slate/interpreter-go/pkg/parser"
)

func main() {
	sexpr := flag.Bool("sexpr", false, "print s-expressions instead of JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: slate-ast [--sexpr] <file.slate>")
		os.Exit(64)
	}

	if err := export(flag.Arg(0), *sexpr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func export(path string, sexpr bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ast exporter: read %s: %w", path, err)
	}

	tokens, lexErrs := lexer.New(source).Scan()
	program, parseErrs := parser.New(tokens).Parse()
	if len(lexErrs) > 0 || len(parseErrs) > 0 {
		for _, lexErr := range lexErrs {
			fmt.Fprintln(os.Stderr, lexErr.Error())
		}
		for _, parseErr := range parseErrs {
			fmt.Fprintln(os.Stderr, parseErr.Error())
		}
		return fmt.Errorf("ast exporter: %s did not parse", path)
	}

	if sexpr {
		for _, stmt := range program.Statements {
			fmt.Fprintln(os.Stdout, ast.SExpr(stmt))
		}
		return nil
	}

	data, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return fmt.Errorf("ast exporter: marshal %s: %w", path, err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
