package generate

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/agentstation/ttscatalog/internal/cmd/table"
	"github.com/agentstation/ttscatalog/internal/store"
	"github.com/agentstation/ttscatalog/pkg/refresh"
)

// Summary is the structured result of a generate run.
type Summary struct {
	Output      string          `json:"output" yaml:"output"`
	Written     bool            `json:"written" yaml:"written"`
	Models      int             `json:"models" yaml:"models"`
	Fixed       int             `json:"fixed" yaml:"fixed"`
	Dynamic     int             `json:"dynamic" yaml:"dynamic"`
	Discovered  int             `json:"discovered" yaml:"discovered"`
	Classified  int             `json:"classified" yaml:"classified"`
	Skipped     int             `json:"skipped" yaml:"skipped"`
	Ambiguous   int             `json:"ambiguous" yaml:"ambiguous"`
	Excluded    int             `json:"excluded" yaml:"excluded"`
	Unavailable int             `json:"unavailable" yaml:"unavailable"`
	Collisions  []string        `json:"collisions,omitempty" yaml:"collisions,omitempty"`
	Published   *store.Location `json:"published,omitempty" yaml:"published,omitempty"`
	DurationMS  int64           `json:"duration_ms" yaml:"duration_ms"`
}

// NewSummary collects the fields of a run worth reporting.
func NewSummary(path string, dryRun bool, r *refresh.Result, published *store.Location) Summary {
	return Summary{
		Output:      path,
		Written:     !dryRun,
		Models:      r.Total(),
		Fixed:       r.Fixed,
		Dynamic:     r.Dynamic,
		Discovered:  r.Discovered,
		Classified:  r.Classified,
		Skipped:     r.Skipped,
		Ambiguous:   r.Ambiguous,
		Excluded:    r.Excluded,
		Unavailable: r.Unavailable,
		Collisions:  r.Collisions,
		Published:   published,
		DurationMS:  r.Duration.Milliseconds(),
	}
}

func printSummary(w io.Writer, s Summary) {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)

	counts := fmt.Sprintf("(models=%d, fixed=%d, dynamic=%d)", s.Models, s.Fixed, s.Dynamic)
	if s.Written {
		_, _ = green.Fprint(w, "Wrote")
		_, _ = fmt.Fprintf(w, " %s %s\n", s.Output, counts)
	} else {
		_, _ = yellow.Fprint(w, "Dry run")
		_, _ = fmt.Fprintf(w, ": %s not written %s\n", s.Output, counts)
	}

	line := func(label string, n int) {
		c := color.New(color.Reset)
		if n > 0 {
			c = yellow
		}
		_, _ = fmt.Fprintf(w, "%s: ", label)
		_, _ = c.Fprintf(w, "%d\n", n)
	}
	line("Skipped (no family or missing files)", s.Skipped)
	line("Unavailable (gated, private or failed)", s.Unavailable)
	line("Ambiguous family", s.Ambiguous)
	line("Excluded", s.Excluded)

	for _, id := range s.Collisions {
		_, _ = yellow.Fprintf(w, "Warning: discovered id %s duplicates a fixed entry\n", id)
	}
	if s.Published != nil {
		_, _ = green.Fprint(w, "Published")
		_, _ = fmt.Fprintf(w, " %s\n", s.Published)
	}
}

func reportRows(r *refresh.Result) table.Data {
	return table.ReposToTableData(r.Repos)
}
