// Package report renders the mapping report of a batch run, as a console
// table for humans and as a YAML artifact for the migration tooling.
package report

import (
	"fmt"
	"io"

	"github.com/crossgrade/crossgrade/internal/core/domain"
	"github.com/crossgrade/crossgrade/internal/ui/style"
	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteTable renders the report as a table, one row per processed package in
// input order. Not-found rows keep their origin column: confirmed absence
// can come from the cache as well as from the network.
func WriteTable(w io.Writer, r *domain.MappingReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Source", "Target", "Origin"})

	for _, result := range r.Results {
		target := result.Target
		if !result.Found {
			target = style.Empty
		}
		t.AppendRow(table.Row{result.Source, target, string(result.Origin)})
	}

	t.AppendFooter(table.Row{summary(r)})

	s := table.StyleLight
	s.Options.DrawBorder = false
	t.SetStyle(s)
	t.Render()
}

func summary(r *domain.MappingReport) string {
	line := fmt.Sprintf("%d processed, %d found, %d not found", r.Processed, r.Found, r.NotFound)
	if r.Partial {
		line += ", partial"
	}
	return line
}
