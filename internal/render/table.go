package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bytesradar/bytesradar/internal/core"
)

// Table renders a per-language breakdown of analysis as a bordered table,
// sorted by total lines descending (core.ProjectAnalysis.SortedLanguages
// already applies the spec's tie-break rule).
func Table(analysis *core.ProjectAnalysis) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Language", "Files", "Lines", "Code", "Comment", "Blank", "Code %"})

	for _, agg := range analysis.SortedLanguages() {
		t.AppendRow(table.Row{
			agg.DisplayName,
			agg.FileCount,
			agg.TotalLines,
			agg.CodeLines,
			agg.CommentLines,
			agg.BlankLines,
			fmt.Sprintf("%.1f%%", agg.CodeRatio()*100),
		})
	}

	s := analysis.Summary()
	t.AppendFooter(table.Row{"TOTAL", s.TotalFiles, s.TotalLines, s.TotalCodeLines, s.TotalCommentLines, s.TotalBlankLines,
		fmt.Sprintf("%.1f%%", s.OverallComplexityRatio*100)})

	return t.Render()
}
