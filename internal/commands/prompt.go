package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var ErrNoInput = errors.New("no input provided")

// Prompter reads a secret from the user.
type Prompter interface {
	ReadSecret(label string) (string, error)
}

// terminalPrompter reads without echo when in is a terminal and falls back to
// reading one line otherwise, so secrets can be piped in.
type terminalPrompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// NewTerminalPrompter returns a Prompter over in that writes its labels to
// out.
func NewTerminalPrompter(in io.Reader, out io.Writer) Prompter {
	return &terminalPrompter{in: in, out: out}
}

func (p *terminalPrompter) ReadSecret(label string) (string, error) {
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(p.out, label)
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out) // newline after hidden input
		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		return string(secret), nil
	}

	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	if line == "" && errors.Is(err, io.EOF) {
		return "", ErrNoInput
	}

	return strings.TrimRight(line, "\r\n"), nil
}
