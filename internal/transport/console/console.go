package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var ErrInputClosed = errors.New("input stream closed")

// Console is a line-oriented terminal: moves come in one line at a time, the board and prompts go
// to out and diagnostics go to errOut.
type Console struct {
	reader *bufio.Reader
	out    *bufio.Writer
	errOut io.Writer
}

func New(in io.Reader, out, errOut io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    bufio.NewWriter(out),
		errOut: errOut,
	}
}

// ReadLine blocks until a full line is available. A final line without a newline is still returned.
func (that *Console) ReadLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}

		return "", ErrInputClosed
	}

	if err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return line, nil
}

// Print writes text as is and flushes, so a prompt without a newline is visible before reading.
func (that *Console) Print(text string) error {
	if _, err := that.out.WriteString(text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := that.out.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// Diagnose writes one diagnostic line.
func (that *Console) Diagnose(text string) error {
	if _, err := fmt.Fprintln(that.errOut, text); err != nil {
		return fmt.Errorf("failed to write diagnostic: %w", err)
	}

	return nil
}
