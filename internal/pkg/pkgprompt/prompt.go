package pkgprompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrCanceled is returned when the user closes the input instead of answering.
var ErrCanceled = errors.New("prompt canceled")

// Prompt is a line-oriented dialog over a reader/writer pair.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer

	// fd is the terminal file descriptor behind in, or -1.
	fd           int
	readPassword func(fd int) ([]byte, error)
}

// New builds a Prompt reading answers from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompt {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}

	return &Prompt{
		in:           bufio.NewReader(in),
		out:          out,
		fd:           fd,
		readPassword: term.ReadPassword,
	}
}

// Say writes msg followed by a newline.
func (p *Prompt) Say(msg string) error {
	_, err := fmt.Fprintln(p.out, msg)
	return err
}

// Line shows label and returns the answer without its line terminator.
func (p *Prompt) Line(ctx context.Context, label string) (string, error) {
	if err := p.ask(ctx, label); err != nil {
		return "", err
	}

	return p.readLine()
}

// Secret shows label and reads an answer that is not echoed on a terminal.
//
// When the input is not a terminal (pipes, tests) it falls back to Line
// semantics.
func (p *Prompt) Secret(ctx context.Context, label string) (string, error) {
	if err := p.ask(ctx, label); err != nil {
		return "", err
	}

	if p.fd < 0 {
		return p.readLine()
	}

	b, err := p.readPassword(p.fd)
	// the terminal swallowed the user's newline
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrCanceled
		}
		return "", err
	}

	return string(b), nil
}

func (p *Prompt) ask(ctx context.Context, label string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(p.out, label, " ")
	return err
}

func (p *Prompt) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrCanceled
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}
