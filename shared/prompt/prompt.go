// Package prompt reads line-oriented answers from an input stream after
// writing a label to the output stream.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"todonotes/shared/failure"
)

var ErrNoInput = errors.New("no input provided")

type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Line writes label and blocks until one line is read. The answer is trimmed
// of surrounding whitespace. A final line without a newline is accepted.
func (r *Reader) Line(label string) (string, error) {
	if _, err := fmt.Fprint(r.out, label); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if line == "" {
			return "", failure.InvalidInput(fmt.Errorf("failed to read input: %w", ErrNoInput))
		}
	}

	return strings.TrimSpace(line), nil
}

func (r *Reader) Writer() io.Writer {
	return r.out
}
