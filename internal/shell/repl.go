package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Session is one run of the interactive shell. It owns the variable store
// and is driven from a single goroutine.
type Session struct {
	store  *Store
	eval   *Evaluator
	reader LineReader
	out    io.Writer
	styles styles
	logger *slog.Logger
	banner bool

	state      State
	lineNumber int
}

// NewSession creates a session seeded with PI, E and opts.Variables.
func NewSession(opts Options) (*Session, error) {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Reader == nil {
		opts.Reader = NewScannerReader(opts.Input, opts.Output)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	store := NewPresetStore()
	for name, value := range opts.Variables {
		if !IsIdentifier(name) {
			return nil, fmt.Errorf("invalid preset variable name %q", name)
		}
		store.Set(name, value)
	}

	return &Session{
		store:      store,
		eval:       NewEvaluator(store),
		reader:     opts.Reader,
		out:        opts.Output,
		styles:     newStyles(opts.Output, opts.NoColor),
		logger:     opts.Logger,
		banner:     opts.Banner,
		state:      StateRunning,
		lineNumber: 1,
	}, nil
}

// Store returns the session's variable store.
func (s *Session) Store() *Store {
	return s.store
}

// State returns the current loop state.
func (s *Session) State() State {
	return s.state
}

// LineNumber returns the number shown in the next prompt.
func (s *Session) LineNumber() int {
	return s.lineNumber
}

// Run prints the banner and processes lines until exit, quit or end of
// input, then prints the farewell line. Read errors end the session the
// same way end of input does.
func (s *Session) Run() {
	s.logger.Debug("interactive shell initialized", "variables", s.store.Len())

	if s.banner {
		formatBanner(s.out, s.styles)
	}

	for s.state == StateRunning {
		line, err := s.reader.ReadLine(formatPrompt(s.lineNumber))
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.logger.Warn("failed to read input", "error", err)
			}
			s.state = StateTerminated
			break
		}

		s.lineNumber++
		s.Execute(line)
	}

	fmt.Fprintln(s.out, Farewell)
}

// Execute classifies and dispatches a single raw line. It does not print a
// prompt or advance the line counter.
func (s *Session) Execute(raw string) {
	line := ParseLine(raw)

	switch line.Kind {
	case KindEmpty:
		return
	case KindCommand:
		s.runCommand(line.Command)
	case KindAssignment:
		s.logger.Debug("evaluating expression", "expr", line.Text)
		s.assign(line.Name, line.Expr)
	case KindExpression:
		s.logger.Debug("evaluating expression", "expr", line.Text)
		fmt.Fprintln(s.out, FormatNumber(s.evaluate(line.Text)))
	}
}

func (s *Session) runCommand(cmd Command) {
	switch cmd {
	case CmdExit, CmdQuit:
		s.state = StateTerminated
	case CmdHelp:
		formatHelp(s.out, s.styles)
	case CmdClear:
		fmt.Fprint(s.out, ClearScreen)
	case CmdVars:
		formatVariables(s.out, s.styles, s.store.List())
	case CmdVersion:
		fmt.Fprintln(s.out, EngineVersion)
	case CmdGC:
		fmt.Fprintln(s.out, GCMessage)
	}
}

// assign evaluates expr and stores it under name. Targets that are not bare
// identifiers are reported like any unrecognised input and leave the store
// unchanged.
func (s *Session) assign(name, expr string) {
	if !IsIdentifier(name) {
		s.logger.Debug("invalid assignment target", "name", name)
		formatEvalError(s.out, s.styles)
		return
	}

	value := s.evaluate(expr)
	s.store.Set(name, value)
	s.logger.Debug("assigned variable", "name", name, "value", value)

	fmt.Fprintf(s.out, "%s = %s\n", name, FormatNumber(value))
}

// evaluate returns the value of expr, or prints the diagnostic and returns 0.
func (s *Session) evaluate(expr string) float64 {
	v, err := s.eval.Evaluate(expr)
	if err != nil {
		s.logger.Debug("expression not recognized", "error", err)
		formatEvalError(s.out, s.styles)
		return 0
	}
	return v
}
