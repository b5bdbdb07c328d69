package shell

import (
	"regexp"
	"strings"
)

// Kind classifies a trimmed input line.
type Kind int

const (
	// KindEmpty is a blank line after trimming
	KindEmpty Kind = iota
	// KindCommand is one of the built-in control commands
	KindCommand
	// KindAssignment is "<name> = <expr>"
	KindAssignment
	// KindExpression is anything else, handed to the Evaluator
	KindExpression
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCommand:
		return "command"
	case KindAssignment:
		return "assignment"
	case KindExpression:
		return "expression"
	default:
		return "unknown"
	}
}

// Command is a built-in control command.
type Command string

const (
	// CmdExit terminates the session
	CmdExit Command = "exit"
	// CmdQuit is an alias for CmdExit
	CmdQuit Command = "quit"
	// CmdHelp prints the command list and expression examples
	CmdHelp Command = "help"
	// CmdClear emits the ANSI clear-screen sequence
	CmdClear Command = "clear"
	// CmdVars lists the defined variables
	CmdVars Command = "vars"
	// CmdVersion prints the engine version
	CmdVersion Command = "version"
	// CmdGC acknowledges a simulated garbage collection
	CmdGC Command = "gc"
)

var commands = map[string]Command{
	"exit":    CmdExit,
	"quit":    CmdQuit,
	"help":    CmdHelp,
	"clear":   CmdClear,
	"vars":    CmdVars,
	"version": CmdVersion,
	"gc":      CmdGC,
}

// identPattern matches a bare assignable name. Dotted names such as Math.PI
// are rejected so they can never shadow the literal table.
var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Line is the result of classifying one input line.
type Line struct {
	Kind Kind

	// Text is the trimmed line
	Text string

	// Command is set for KindCommand
	Command Command

	// Name and Expr are set for KindAssignment
	Name string
	Expr string
}

// ParseLine trims spaces and tabs from raw and classifies it.
// A line is an assignment when it contains '=' and no "=="; it is split at
// the first '=' and both sides are trimmed.
func ParseLine(raw string) Line {
	text := trim(raw)
	if text == "" {
		return Line{Kind: KindEmpty}
	}

	if cmd, ok := commands[text]; ok {
		return Line{Kind: KindCommand, Text: text, Command: cmd}
	}

	if name, expr, ok := SplitAssignment(text); ok {
		return Line{Kind: KindAssignment, Text: text, Name: name, Expr: expr}
	}

	return Line{Kind: KindExpression, Text: text}
}

// SplitAssignment splits text at its first '=' unless text contains "==".
func SplitAssignment(text string) (name, expr string, ok bool) {
	if strings.Contains(text, "==") {
		return "", "", false
	}
	name, expr, ok = strings.Cut(text, "=")
	if !ok {
		return "", "", false
	}
	return trim(name), trim(expr), true
}

// IsIdentifier reports whether name can be assigned to.
func IsIdentifier(name string) bool {
	return identPattern.MatchString(name)
}

func trim(s string) string {
	return strings.Trim(s, " \t")
}
