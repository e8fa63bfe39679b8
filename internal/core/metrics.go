package core

// FileMetrics is the per-file line-count record produced by the classifier.
type FileMetrics struct {
	Path         string
	SizeBytes    uint64
	Language     LanguageId
	TotalLines   uint64
	CodeLines    uint64
	CommentLines uint64
	BlankLines   uint64
	Classified   bool // false when the file exceeded max_line_length and was skipped
}

// FileMetricsFromBytes classifies buf under rules and builds a FileMetrics
// record with Classified set and SizeBytes taken from len(buf). It does not
// check max_line_length: the caller decides that before calling this, and
// uses UnclassifiedFileMetrics instead (see buildFileMetrics in
// orchestrator.go).
func FileMetricsFromBytes(path string, buf []byte, lang LanguageId, rules *LanguageRules, ignoreWhitespace bool) FileMetrics {
	r := Classify(buf, rules, ignoreWhitespace)
	return FileMetrics{
		Path:         path,
		SizeBytes:    uint64(len(buf)),
		Language:     lang,
		TotalLines:   r.TotalLines,
		CodeLines:    r.CodeLines,
		CommentLines: r.CommentLines,
		BlankLines:   r.BlankLines,
		Classified:   true,
	}
}

// UnclassifiedFileMetrics builds a record for a file that was not run
// through the classifier (max_line_length exceeded, tagged generated-like).
func UnclassifiedFileMetrics(path string, sizeBytes uint64, lang LanguageId) FileMetrics {
	return FileMetrics{
		Path:      path,
		SizeBytes: sizeBytes,
		Language:  lang,
	}
}
