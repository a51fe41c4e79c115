package out

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	sessionout "excalc/internal/modules/session/port/out"
	"excalc/internal/platform/layout"
	"excalc/internal/platform/theme"
)

const intro = "When prompted by a label and question mark, such as 'Command?', type the relevant information and press enter."

type ConsoleDisplay struct {
	out        io.Writer
	styles     theme.Styles
	labelWidth int
}

func NewConsoleDisplay(out io.Writer, styles theme.Styles, labelWidth int) sessionout.Display {
	return &ConsoleDisplay{out: out, styles: styles, labelWidth: labelWidth}
}

func (d *ConsoleDisplay) Banner(_ context.Context, title string, commands []string) error {
	rule := strings.Repeat("─", utf8.RuneCountInString(title))
	_, err := fmt.Fprintf(d.out, "%s\n%s\n%s\nThe commands are: %s\n",
		d.styles.Title.Render(title),
		d.styles.Rule.Render(rule),
		intro,
		strings.Join(commands, ", "),
	)
	if err != nil {
		return fmt.Errorf("write banner: %w", err)
	}
	return nil
}

func (d *ConsoleDisplay) Blank(_ context.Context) error {
	if _, err := fmt.Fprintln(d.out); err != nil {
		return fmt.Errorf("write blank line: %w", err)
	}
	return nil
}

func (d *ConsoleDisplay) Stat(_ context.Context, label string, value float64, unit string) error {
	line := layout.PadRight(label, d.labelWidth) + " | " + layout.Number(value)
	if unit != "" {
		line += " " + unit
	}
	if _, err := fmt.Fprintln(d.out, line); err != nil {
		return fmt.Errorf("write stat: %w", err)
	}
	return nil
}

func (d *ConsoleDisplay) List(_ context.Context, heading string, items []string) error {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(d.styles.Header.Render(heading))
	sb.WriteString("\n")
	for _, item := range items {
		sb.WriteString(" - ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	if _, err := io.WriteString(d.out, sb.String()); err != nil {
		return fmt.Errorf("write list: %w", err)
	}
	return nil
}

// Notice prints a highlighted message that is not part of any prompt.
func (d *ConsoleDisplay) Notice(_ context.Context, text string) error {
	if _, err := fmt.Fprintln(d.out, d.styles.Hot.Render(text)); err != nil {
		return fmt.Errorf("write notice: %w", err)
	}
	return nil
}
