package csvio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gocarina/gocsv"
	"github.com/mattn/go-runewidth"

	"github.com/rhyrak/combo-schedule/pkg/model"
)

// NoResults is printed in place of an empty listing.
const NoResults = "No valid schedules found"

// ExportResults writes one row per course and day of every result to the
// csv file at path, replacing any existing file.
func ExportResults(outcome model.Outcome, path string) error {
	rows := formatResults(outcome)

	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ExportResultsString is ExportResults without the file.
func ExportResultsString(outcome model.Outcome) (string, error) {
	rows := formatResults(outcome)
	return gocsv.MarshalString(&rows)
}

func formatResults(outcome model.Outcome) []*model.ResultCSVRow {
	rows := []*model.ResultCSVRow{}
	for i, r := range outcome.Results {
		for _, s := range r.Selections {
			for _, day := range s.Slots.Days() {
				for _, t := range s.Slots[day] {
					rows = append(rows, &model.ResultCSVRow{
						Schedule:     i + 1,
						Course:       s.Course,
						Credits:      s.Credits,
						Option:       s.Option + 1,
						Day:          day.String(),
						Time:         t,
						TotalCredits: r.TotalCredits,
						GapMinutes:   r.GapMinutes,
						DistinctDays: r.DistinctDays,
					})
				}
			}
		}
	}
	return rows
}

type PrintOptions struct {
	// Styled renders headings with terminal styling.
	Styled bool
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	dayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// PrintResults renders every result of the outcome with its credits, gap,
// day count and a day-ordered course listing.
func PrintResults(w io.Writer, outcome model.Outcome, opts PrintOptions) error {
	style := func(s lipgloss.Style, text string) string {
		if opts.Styled {
			return s.Render(text)
		}
		return text
	}

	var b strings.Builder
	if outcome.Empty() {
		b.WriteString(NoResults + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for i, r := range outcome.Results {
		width := 0
		for _, s := range r.Selections {
			width = max(width, runewidth.StringWidth(s.Course))
		}

		b.WriteString(style(headingStyle, fmt.Sprintf("Schedule %d:", i+1)) + "\n")
		fmt.Fprintf(&b, "Total credits: %d\n", r.TotalCredits)
		fmt.Fprintf(&b, "Total gap between classes: %d minutes\n", r.GapMinutes)
		fmt.Fprintf(&b, "Days per week: %d\n", r.DistinctDays)
		b.WriteString("Classes:\n")
		for _, plan := range r.Days {
			b.WriteString(style(dayStyle, plan.Day.String()+":") + "\n")
			for _, e := range plan.Entries {
				fmt.Fprintf(&b, "  %s  %s\n", runewidth.FillRight(e.Course, width), strings.Join(e.Ranges, ", "))
			}
		}
		b.WriteString(strings.Repeat("-", 27) + "\n")
	}
	if len(outcome.Results) < outcome.Total {
		fmt.Fprintf(&b, "Showing %d of %d schedules\n", len(outcome.Results), outcome.Total)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
