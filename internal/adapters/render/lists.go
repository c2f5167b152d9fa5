package render

import (
	"github.com/bnema/mastodon-list-manager/internal/application"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ListsTable renders the list overview shown by `export list` without a
// name.
func ListsTable(summaries []application.ListSummary) string {
	if len(summaries) == 0 {
		return newStyles().empty.Render("No lists.")
	}

	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault

	t := table.NewWriter()
	t.SetStyle(style)
	t.AppendHeader(table.Row{"List", "Members", "ID"})

	total := 0
	for _, summary := range summaries {
		t.AppendRow(table.Row{summary.List.Title, humanize.Comma(int64(summary.Members)), string(summary.List.ID)})
		total += summary.Members
	}
	t.AppendFooter(table.Row{"Total", humanize.Comma(int64(total)), ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	return t.Render()
}
