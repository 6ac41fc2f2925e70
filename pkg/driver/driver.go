// Package driver runs the full Slate pipeline for one source text: lexing,
// parsing, and evaluation. Its contract is text in, ordered print lines plus
// ordered diagnostic lines out. Syntax errors from both front-end phases are
// surfaced together and suppress execution entirely; a runtime error aborts
// the run after the statements that already executed. Neither error kind
// escapes as a panic or terminates the process — exit behaviour belongs to
// the caller.
package driver

import (
	"errors"
	"io"
	"time"

	"github.com/oarkflow/log"

	"slate/interpreter-go/pkg/interpreter"
	"slate/interpreter-go/pkg/lexer"
	"slate/interpreter-go/pkg/parser"
)

// Result reports what one run produced. Diagnostics holds one formatted line
// per error, in the order they should be presented.
type Result struct {
	Diagnostics     []string
	HadSyntaxError  bool
	HadRuntimeError bool
}

// Ok reports whether the run completed without any diagnostics.
func (r Result) Ok() bool {
	return !r.HadSyntaxError && !r.HadRuntimeError
}

// Option configures a Session.
type Option func(*Session)

// WithLogger overrides the session's logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session holds interpreter state across runs, so a REPL keeps its global
// bindings from line to line. Print output goes to the writer supplied at
// construction, in execution order.
type Session struct {
	interp *interpreter.Interpreter
	logger *log.Logger
}

// NewSession creates a session whose print statements write to out.
func NewSession(out io.Writer, opts ...Option) *Session {
	s := &Session{
		interp: interpreter.New(out),
		logger: &log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one source text through the whole pipeline.
func (s *Session) Run(source []byte) Result {
	var result Result

	started := time.Now()
	tokens, lexErrs := lexer.New(source).Scan()
	program, parseErrs := parser.New(tokens).Parse()
	s.logger.Debug().
		Int("tokens", len(tokens)).
		Int("statements", len(program.Statements)).
		Int("syntax_errors", len(lexErrs)+len(parseErrs)).
		Dur("duration", time.Since(started)).
		Msg("front end finished")

	for _, err := range lexErrs {
		result.Diagnostics = append(result.Diagnostics, err.Error())
	}
	for _, err := range parseErrs {
		result.Diagnostics = append(result.Diagnostics, err.Error())
	}
	if len(result.Diagnostics) > 0 {
		result.HadSyntaxError = true
		return result
	}

	started = time.Now()
	if err := s.interp.Run(program); err != nil {
		result.HadRuntimeError = true
		result.Diagnostics = append(result.Diagnostics, err.Error())
		var runtimeErr *interpreter.RuntimeError
		if errors.As(err, &runtimeErr) {
			s.logger.Debug().
				Str("kind", runtimeErr.Kind.String()).
				Int("line", runtimeErr.Line).
				Msg("execution aborted")
		}
		return result
	}
	s.logger.Debug().Dur("duration", time.Since(started)).Msg("execution finished")
	return result
}

// Run executes a single source text in a fresh session.
func Run(source []byte, out io.Writer, opts ...Option) Result {
	return NewSession(out, opts...).Run(source)
}
