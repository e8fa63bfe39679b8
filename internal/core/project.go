package core

import "sort"

// LanguageAggregate sums FileMetrics across every file of one language
// within a project. Share/CodeRatio/DocRatio are derived on read, never
// stored, so Merge never has to reconcile them.
type LanguageAggregate struct {
	Language     LanguageId
	DisplayName  string
	FileCount    uint64
	TotalLines   uint64
	CodeLines    uint64
	CommentLines uint64
	BlankLines   uint64
	SizeBytes    uint64
}

// Share is this language's fraction of the project's total lines.
func (a LanguageAggregate) Share(projectTotalLines uint64) float64 {
	if projectTotalLines == 0 {
		return 0
	}
	return float64(a.TotalLines) / float64(projectTotalLines)
}

// CodeRatio is code_lines/total_lines, 0 when total_lines is 0.
func (a LanguageAggregate) CodeRatio() float64 {
	if a.TotalLines == 0 {
		return 0
	}
	return float64(a.CodeLines) / float64(a.TotalLines)
}

// DocRatio is comment_lines/total_lines, 0 when total_lines is 0.
func (a LanguageAggregate) DocRatio() float64 {
	if a.TotalLines == 0 {
		return 0
	}
	return float64(a.CommentLines) / float64(a.TotalLines)
}

func (a *LanguageAggregate) addFile(fm FileMetrics) {
	a.FileCount++
	a.TotalLines += fm.TotalLines
	a.CodeLines += fm.CodeLines
	a.CommentLines += fm.CommentLines
	a.BlankLines += fm.BlankLines
	a.SizeBytes += fm.SizeBytes
}

func (a *LanguageAggregate) merge(o LanguageAggregate) {
	a.FileCount += o.FileCount
	a.TotalLines += o.TotalLines
	a.CodeLines += o.CodeLines
	a.CommentLines += o.CommentLines
	a.BlankLines += o.BlankLines
	a.SizeBytes += o.SizeBytes
}

// Summary is the project-level rollup returned by ProjectAnalysis.Summary().
type Summary struct {
	TotalFiles                uint64
	TotalLines                uint64
	TotalCodeLines            uint64
	TotalCommentLines         uint64
	TotalBlankLines           uint64
	TotalSizeBytes            uint64
	LanguageCount             int
	PrimaryLanguage           string
	OverallComplexityRatio    float64 // code/total
	OverallDocumentationRatio float64 // comment/total
}

// ProjectAnalysis is the core's final output: per-language aggregates plus
// optional per-file detail, retained only when AnalyzeOptions.Detailed.
type ProjectAnalysis struct {
	ProjectName        string
	LanguageAggregates map[LanguageId]*LanguageAggregate
	Files              []FileMetrics // populated only in detailed mode, in tar order
}

// NewProjectAnalysis creates an empty analysis for the given project name.
func NewProjectAnalysis(projectName string) *ProjectAnalysis {
	return &ProjectAnalysis{
		ProjectName:        projectName,
		LanguageAggregates: make(map[LanguageId]*LanguageAggregate),
	}
}

// AddFile folds one file's metrics into the language aggregate, and appends
// to Files when detailed is true. Adding the same path twice double-counts;
// uniqueness is the archive reader's responsibility, not this method's.
func (p *ProjectAnalysis) AddFile(fm FileMetrics, detailed bool) {
	agg, ok := p.LanguageAggregates[fm.Language]
	if !ok {
		rules := RulesFor(fm.Language)
		agg = &LanguageAggregate{Language: fm.Language, DisplayName: rules.DisplayName}
		p.LanguageAggregates[fm.Language] = agg
	}
	agg.addFile(fm)
	if detailed {
		p.Files = append(p.Files, fm)
	}
}

// Merge pairwise-adds other's language aggregates into p. Associative and
// commutative: safe to fold worker results in any order.
func (p *ProjectAnalysis) Merge(other *ProjectAnalysis) {
	if other == nil {
		return
	}
	for id, oagg := range other.LanguageAggregates {
		agg, ok := p.LanguageAggregates[id]
		if !ok {
			cp := *oagg
			p.LanguageAggregates[id] = &cp
			continue
		}
		agg.merge(*oagg)
	}
	if len(other.Files) > 0 {
		p.Files = append(p.Files, other.Files...)
	}
}

// Summary computes totals and derived ratios. Ties for primary_language
// break by lexicographic order of display name (spec's Open Question #3).
func (p *ProjectAnalysis) Summary() Summary {
	var s Summary
	s.LanguageCount = len(p.LanguageAggregates)

	type candidate struct {
		displayName string
		totalLines  uint64
	}
	var candidates []candidate

	for _, agg := range p.LanguageAggregates {
		s.TotalFiles += agg.FileCount
		s.TotalLines += agg.TotalLines
		s.TotalCodeLines += agg.CodeLines
		s.TotalCommentLines += agg.CommentLines
		s.TotalBlankLines += agg.BlankLines
		s.TotalSizeBytes += agg.SizeBytes
		candidates = append(candidates, candidate{agg.DisplayName, agg.TotalLines})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].totalLines != candidates[j].totalLines {
			return candidates[i].totalLines > candidates[j].totalLines
		}
		return candidates[i].displayName < candidates[j].displayName
	})
	if len(candidates) > 0 {
		s.PrimaryLanguage = candidates[0].displayName
	}

	if s.TotalLines > 0 {
		s.OverallComplexityRatio = float64(s.TotalCodeLines) / float64(s.TotalLines)
		s.OverallDocumentationRatio = float64(s.TotalCommentLines) / float64(s.TotalLines)
	}
	return s
}

// SortedLanguages returns language aggregates ordered by total lines
// descending, ties broken by display name — the order serializers/render
// want for a stable table.
func (p *ProjectAnalysis) SortedLanguages() []*LanguageAggregate {
	out := make([]*LanguageAggregate, 0, len(p.LanguageAggregates))
	for _, agg := range p.LanguageAggregates {
		out = append(out, agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalLines != out[j].TotalLines {
			return out[i].TotalLines > out[j].TotalLines
		}
		return out[i].DisplayName < out[j].DisplayName
	})
	return out
}
