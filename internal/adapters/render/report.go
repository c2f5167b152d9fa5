package render

import (
	"fmt"
	"strings"

	"github.com/bnema/mastodon-list-manager/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// ImportReport renders the outcome of a batch import. target names what was
// imported into, e.g. `list "Friends"` or "following".
func ImportReport(target string, report domain.ImportReport) (string, error) {
	return run(func(s styles) string {
		return importView(target, report, s)
	})
}

func importView(target string, report domain.ImportReport, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Imported %s of %s into %s",
			humanize.Comma(int64(report.Applied)),
			english.Plural(report.Rows, "row", ""),
			target,
		)),
		s.header.Render(strings.Join([]string{
			counter(s, "applied", report.Applied),
			counter(s, "already present", report.Skipped),
			counter(s, "duplicates", report.Duplicates),
			counter(s, "removed", report.Removed),
			counter(s, "failed", len(report.Failures)),
		}, "  ")),
	}

	if len(report.Pending) > 0 {
		pending := make([]string, 0, len(report.Pending)+1)
		pending = append(pending, s.warning.Render(fmt.Sprintf("Awaiting approval (%d):", len(report.Pending))))
		for _, handle := range report.Pending {
			pending = append(pending, "  "+s.handle.Render(handle.String()))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, pending...)))
	}

	if len(report.Failures) > 0 {
		failures := make([]string, 0, len(report.Failures)+1)
		failures = append(failures, s.failure.Render(fmt.Sprintf("Failures (%d):", len(report.Failures))))
		for _, failure := range report.Failures {
			handle := failure.Handle
			if handle == "" {
				handle = "(empty)"
			}
			failures = append(failures, fmt.Sprintf("  %s %s %s",
				s.line.Render(fmt.Sprintf("line %d", failure.Line)),
				s.handle.Render(handle),
				failure.Err.Error(),
			))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, failures...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func counter(s styles, label string, n int) string {
	return fmt.Sprintf("%s: %s", label, s.count.Render(humanize.Comma(int64(n))))
}

// ExportSummary is the one-line confirmation printed after a file export.
func ExportSummary(rows int, destination string) string {
	return fmt.Sprintf("Exported %s to %s", english.Plural(rows, "account", ""), destination)
}
