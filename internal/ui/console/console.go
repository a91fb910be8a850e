// Package console adapts a terminal to the game's input and output
// seams and narrates battle events as plain lines.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/emberclash.quest/internal/ui"
)

// In reads player input line by line, echoing prompts to a writer
// before each read. Prompts are written without a trailing newline so
// the cursor stays on the prompt line.
type In struct {
	prompts io.Writer
	reader  *bufio.Reader
}

var _ ui.Input = (*In)(nil)

// NewIn returns an In reading from r and writing prompts to prompts.
func NewIn(r io.Reader, prompts io.Writer) *In {
	return &In{
		prompts: prompts,
		reader:  bufio.NewReader(r),
	}
}

// Read presents prompt and returns the next line without its newline.
// A final line missing its newline is still returned whole.
func (i *In) Read(prompt string) (string, error) {
	if _, err := fmt.Fprint(i.prompts, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := i.reader.ReadString('\n')
	if err != nil {
		if line == "" {
			return "", fmt.Errorf("read line: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Out writes game text to a writer, one line per call.
type Out struct {
	writer io.Writer
}

var _ ui.Output = (*Out)(nil)

// NewOut returns an Out writing to w.
func NewOut(w io.Writer) *Out {
	return &Out{writer: w}
}

// Write writes text followed by a newline.
func (o *Out) Write(text string) {
	fmt.Fprintln(o.writer, text)
}
