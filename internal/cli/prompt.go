package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Prompter asks the user for one line of input.
type Prompter interface {
	// Prompt displays label and returns the entered line without the
	// trailing newline. Returns [io.EOF] when input is exhausted or the
	// prompt was aborted.
	Prompt(label string) (string, error)

	// Close releases any terminal state held by the prompter.
	Close() error
}

// readerPrompter reads answers from a plain reader, echoing each label to
// out first. Used for piped stdin and in tests.
type readerPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReaderPrompter returns a Prompter that reads answers line by line
// from in.
func NewReaderPrompter(in io.Reader, out io.Writer) Prompter {
	return &readerPrompter{in: bufio.NewReader(in), out: out}
}

func (p *readerPrompter) Prompt(label string) (string, error) {
	_, _ = fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}

	// EOF with no partial line means input is exhausted.
	if line == "" && err != nil {
		return "", io.EOF
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (p *readerPrompter) Close() error {
	return nil
}

// linerPrompter provides line editing when stdin is a terminal.
type linerPrompter struct {
	state *liner.State
}

// NewLinerPrompter returns a Prompter backed by a liner terminal session.
// The caller must Close it to restore the terminal.
func NewLinerPrompter() Prompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	return &linerPrompter{state: state}
}

func (p *linerPrompter) Prompt(label string) (string, error) {
	line, err := p.state.Prompt(label)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}

		return "", fmt.Errorf("reading input: %w", err)
	}

	return line, nil
}

func (p *linerPrompter) Close() error {
	return p.state.Close()
}
