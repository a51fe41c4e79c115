package service

import (
	"fmt"
	"io"
	"strconv"

	"excalc/internal/modules/summary/domain"
	"excalc/internal/modules/summary/dto"
	"excalc/internal/platform/layout"
	"excalc/internal/platform/theme"
)

type Renderer struct {
	out           io.Writer
	styles        theme.Styles
	barLabelWidth int
	perBlock      float64
}

func NewRenderer(out io.Writer, styles theme.Styles, barLabelWidth int, perBlock float64) *Renderer {
	return &Renderer{out: out, styles: styles, barLabelWidth: barLabelWidth, perBlock: perBlock}
}

func (r *Renderer) Build(records []dto.Record) dto.Report {
	if len(records) == 0 {
		return dto.Report{Empty: true}
	}
	lines := make([]dto.Line, 0, len(records))
	calories := make([]float64, 0, len(records))
	for idx, record := range records {
		bar := domain.NewBar(record.Calories, r.perBlock)
		lines = append(lines, dto.Line{
			Label:    strconv.Itoa(idx+1) + ". " + record.Command,
			Bar:      bar.String(),
			Calories: bar.Rounded,
		})
		calories = append(calories, record.Calories)
	}
	return dto.Report{Lines: lines, Total: domain.Total(calories)}
}

func (r *Renderer) Write(report dto.Report) error {
	if report.Empty {
		if _, err := fmt.Fprintf(r.out, "\n%s\n", r.styles.Muted.Render("No exercises recorded.")); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		return nil
	}
	if _, err := fmt.Fprintf(r.out, "\n%s\n", r.styles.Header.Render("Calories burned per exercise:")); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	for _, line := range report.Lines {
		if _, err := fmt.Fprintf(r.out, "%s%s %d\n", layout.PadRight(line.Label, r.barLabelWidth), r.styles.Bar.Render(line.Bar), line.Calories); err != nil {
			return fmt.Errorf("write summary line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(r.out, "\nTotal: %d calories\n", report.Total); err != nil {
		return fmt.Errorf("write summary total: %w", err)
	}
	return nil
}
