// Package shell implements the spidershell interactive loop.
// A Session reads one line at a time, classifies it as a control command,
// an assignment or an expression, and evaluates expressions against a
// closed table of recognised forms backed by a variable store.
package shell

import (
	"io"
	"log/slog"

	"github.com/itsmostafa/spidershell/internal/version"
)

// Options holds configuration for a Session.
type Options struct {
	// Output receives prompts, results and command output (default: os.Stdout)
	Output io.Writer

	// Reader supplies input lines. If nil, a ScannerReader over Input is used.
	Reader LineReader

	// Input is read when Reader is nil (default: os.Stdin)
	Input io.Reader

	// Banner prints the startup banner before the first prompt
	Banner bool

	// NoColor disables styling even when Output is a terminal
	NoColor bool

	// Variables are extra presets added after PI and E
	Variables map[string]float64

	// Logger receives debug traces (default: slog.Default())
	Logger *slog.Logger
}

// DefaultOptions returns Options with the banner enabled.
func DefaultOptions() Options {
	return Options{
		Banner: true,
	}
}

// State is the REPL state machine position.
type State int

const (
	// StateRunning accepts further input lines
	StateRunning State = iota
	// StateTerminated stops the loop; set by exit/quit or end of input
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Variable is a single named entry of the Store.
type Variable struct {
	Name  string
	Value float64
}

// Fixed output strings.
const (
	// EngineVersion is printed by the version command
	EngineVersion = version.Engine + " (Demo Mode)"

	// GCMessage is printed by the gc command
	GCMessage = "Garbage collection completed (simulated)"

	// ClearScreen is the ANSI sequence emitted by the clear command
	ClearScreen = "\x1b[2J\x1b[1;1H"

	// Farewell is printed once when the loop terminates
	Farewell = "Goodbye!"

	// NoVariables is printed by vars when the store is empty
	NoVariables = "No variables defined"
)
