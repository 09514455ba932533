// Package table converts catalog entries and refresh results into rows for
// tabular CLI output.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/families"
	"github.com/agentstation/ttscatalog/pkg/refresh"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// EntriesToTableData converts catalog entries to table format.
// The wide layout adds the source, dependencies and file count.
func EntriesToTableData(entries []catalog.Entry, wide bool) Data {
	headers := []string{"ID", "Name", "Engine", "Type", "Languages"}
	if wide {
		headers = append(headers, "Source", "Dependencies", "Files")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{
			e.ID,
			e.DisplayName,
			e.Engine,
			e.ModelType,
			dash(e.Meta.Languages),
		}
		if wide {
			row = append(row,
				FormatSource(e.Source),
				dash(strings.Join(e.Dependencies, ", ")),
				strconv.Itoa(len(e.Files)),
			)
		}
		rows = append(rows, row)
	}

	data := Data{Headers: headers, Rows: rows}
	if wide {
		data.ColumnAlignment = []Align{
			AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignLeft,
			AlignLeft, AlignLeft, AlignRight,
		}
	}
	return data
}

// EntryDetails renders a single entry as a property/value table.
func EntryDetails(e catalog.Entry) Data {
	rows := [][]string{
		{"ID", e.ID},
		{"Name", e.DisplayName},
		{"Engine", e.Engine},
		{"Type", e.ModelType},
		{"Source", FormatSource(e.Source)},
		{"Files", dash(strings.Join(e.Files, "\n"))},
		{"Prefixes", dash(strings.Join(e.Prefixes, "\n"))},
		{"Dependencies", dash(strings.Join(e.Dependencies, ", "))},
		{"Languages", dash(e.Meta.Languages)},
		{"Description", dash(e.Meta.Description)},
	}
	return Data{Headers: []string{"Property", "Value"}, Rows: rows}
}

// ReposToTableData converts per-repository refresh outcomes to table format.
func ReposToTableData(repos []refresh.RepoResult) Data {
	rows := make([][]string, 0, len(repos))
	for _, r := range repos {
		rows = append(rows, []string{
			r.RepoID,
			string(r.Outcome),
			dash(string(r.Family)),
			strconv.Itoa(r.Entries),
			dash(r.Reason),
		})
	}
	return Data{
		Headers:         []string{"Repository", "Outcome", "Family", "Entries", "Reason"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignLeft},
	}
}

// ClassificationToTableData renders a single classification verdict.
func ClassificationToTableData(c families.Classification) Data {
	rows := [][]string{
		{"Repository", c.RepoID},
		{"Outcome", string(c.Outcome)},
		{"Family", dash(string(c.Family))},
	}
	if len(c.Candidates) > 0 {
		names := make([]string, len(c.Candidates))
		for i, f := range c.Candidates {
			names[i] = string(f)
		}
		rows = append(rows, []string{"Candidates", strings.Join(names, ", ")})
	}
	if c.Reason != "" {
		rows = append(rows, []string{"Reason", c.Reason})
	}
	ids := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		ids[i] = e.ID
	}
	rows = append(rows, []string{"Entries", dash(strings.Join(ids, "\n"))})
	return Data{Headers: []string{"Property", "Value"}, Rows: rows}
}

// CountsToTableData converts refresh counters to a two-column table.
func CountsToTableData(counts []refresh.Count) Data {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Name, strconv.Itoa(c.Value)})
	}
	return Data{
		Headers:         []string{"Counter", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// FormatSource renders an entry source compactly.
func FormatSource(s catalog.Source) string {
	switch s.Kind {
	case catalog.SourceKindHF:
		if s.Rev != "" {
			return "hf:" + s.Repo + "@" + s.Rev
		}
		return "hf:" + s.Repo
	case catalog.SourceKindLocalBundle:
		return "bundle:" + s.BundleName
	default:
		return string(s.Kind)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
