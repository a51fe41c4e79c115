package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	apperrors "excalc/internal/platform/errors"
	"excalc/internal/platform/layout"
	"excalc/internal/platform/terminal"
	"excalc/internal/platform/theme"
)

// ConsoleService owns the line-level mechanics of prompting: writing the
// padded label, reading a line and rewinding over rejected attempts.
type ConsoleService struct {
	in         *bufio.Reader
	out        io.Writer
	rewriter   terminal.LineRewriter
	styles     theme.Styles
	labelWidth int

	readOnce sync.Once
	lines    chan readResult
}

type readResult struct {
	line string
	err  error
}

func NewConsoleService(in io.Reader, out io.Writer, rewriter terminal.LineRewriter, styles theme.Styles, labelWidth int) *ConsoleService {
	return &ConsoleService{
		in:         bufio.NewReader(in),
		out:        out,
		rewriter:   rewriter,
		styles:     styles,
		labelWidth: labelWidth,
	}
}

// PromptLine is the text written before the cursor when asking for label.
func (s *ConsoleService) PromptLine(label string) string {
	return layout.PadRight(label, s.labelWidth) + " | " + s.rewriter.ClearLineRight()
}

// Ask writes the prompt and returns the raw line without its newline.
func (s *ConsoleService) Ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(s.out, s.PromptLine(label)); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	var res readResult
	select {
	case <-ctx.Done():
		_, _ = io.WriteString(s.out, "\n")
		return "", ctx.Err()
	case r, ok := <-s.readLines():
		if !ok {
			r = readResult{err: io.EOF}
		}
		res = r
	}
	line, err := res.line, res.err
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			_, _ = io.WriteString(s.out, "\n")
			return "", apperrors.ErrInputClosed
		}
	}
	if _, err := io.WriteString(s.out, s.rewriter.ClearScreenBelow()); err != nil {
		return "", fmt.Errorf("clear screen: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readLines starts the reader goroutine on first use. The channel is closed
// after the first read error.
func (s *ConsoleService) readLines() <-chan readResult {
	s.readOnce.Do(func() {
		s.lines = make(chan readResult)
		go func() {
			defer close(s.lines)
			for {
				line, err := s.in.ReadString('\n')
				s.lines <- readResult{line: line, err: err}
				if err != nil {
					return
				}
			}
		}()
	})
	return s.lines
}

// Reject prints the diagnostic lines and moves the cursor back to the prompt
// line so the next attempt overwrites this one.
func (s *ConsoleService) Reject(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(s.out, s.styles.Hot.Render(line)); err != nil {
			return fmt.Errorf("write diagnostic: %w", err)
		}
	}
	if _, err := io.WriteString(s.out, s.rewriter.CursorUp(len(lines)+1)); err != nil {
		return fmt.Errorf("move cursor: %w", err)
	}
	return nil
}

// Println writes lines that stay on screen.
func (s *ConsoleService) Println(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(s.out, line); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}
	return nil
}

// Echo redraws the prompt for label as if answer had been typed.
func (s *ConsoleService) Echo(label, answer string) error {
	if _, err := io.WriteString(s.out, s.rewriter.CursorUp(1)+s.PromptLine(label)+answer+"\n"); err != nil {
		return fmt.Errorf("echo answer: %w", err)
	}
	return nil
}
