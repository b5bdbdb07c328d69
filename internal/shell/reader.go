package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader supplies input lines to a Session.
type LineReader interface {
	// ReadLine shows prompt and blocks for the next line, without its
	// terminator. It returns io.EOF when input is exhausted.
	ReadLine(prompt string) (string, error)

	// Close releases any terminal state held by the reader
	Close() error
}

// ScannerReader reads lines from a plain stream and writes prompts to out.
// Lines have no length limit.
type ScannerReader struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewScannerReader creates a reader over in that echoes prompts to out.
func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{reader: bufio.NewReader(in), out: out}
}

// ReadLine writes prompt and returns the next line. A final line without a
// terminator is returned before io.EOF.
func (r *ScannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	line, err := r.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		// The dangling prompt gets its own line break.
		fmt.Fprintln(r.out)
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close is a no-op; the underlying stream belongs to the caller.
func (r *ScannerReader) Close() error {
	return nil
}

// ReadlineReader provides line editing and history on a terminal.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader opens a terminal reader. historyFile may be empty.
func NewReadlineReader(historyFile string) (*ReadlineReader, error) {
	return newReadlineReader(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
	})
}

func newReadlineReader(cfg *readline.Config) (*ReadlineReader, error) {
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine shows prompt and returns the edited line. Ctrl-C discards the
// current line instead of ending the session.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

// Close restores the terminal.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
