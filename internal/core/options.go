package core

import "time"

// AnalyzeOptions configures one analysis call. Zero value is not usable
// directly; use DefaultAnalyzeOptions and override fields, mirroring the
// teacher's DefaultSettings() constructor pattern.
type AnalyzeOptions struct {
	IgnoreHidden     bool
	IgnoreGitignore  bool
	MaxFileSize      uint64 // 0 or negative-equivalent => unbounded
	MinFileSize      uint64
	IncludeTests     bool
	IncludeDocs      bool
	IncludeHidden    bool
	CountGenerated   bool
	IncludePattern   string // glob, empty = no filter
	ExcludePattern   string
	AllowLanguage    map[LanguageId]struct{} // nil = allow all
	DenyLanguage     map[LanguageId]struct{}
	AggressiveFilter bool
	IgnoreWhitespace bool // default true
	MaxLineLength    uint64

	CountUnknownAsPlainText bool

	// Detailed retains ProjectAnalysis.Files in tar order.
	Detailed bool

	// HTTP knobs.
	Timeout            time.Duration
	MaxRedirects       int
	UserAgent          string
	AcceptInvalidCerts bool
	UseCompression     bool
	Proxy              string
	Headers            map[string]string
	AuthToken          string
	ProviderSettings   map[string]string

	// RetryCount bounds httpfetch's retry budget (A3).
	RetryCount int

	// Parallel enables the experimental-parallel worker pool (§5).
	Parallel   bool
	NumWorkers int
}

// DefaultAnalyzeOptions returns the spec's documented defaults.
func DefaultAnalyzeOptions() AnalyzeOptions {
	return AnalyzeOptions{
		IgnoreHidden:     true,
		IgnoreGitignore:  true,
		MaxFileSize:      0,
		MinFileSize:      0,
		IncludeTests:     true,
		IncludeDocs:      true,
		IncludeHidden:    false,
		CountGenerated:   false,
		IgnoreWhitespace: true,
		MaxLineLength:    0,
		Timeout:          30 * time.Second,
		MaxRedirects:     5,
		UserAgent:        "bytesradar/1.0",
		UseCompression:   true,
		RetryCount:       3,
		NumWorkers:       0, // 0 => runtime.NumCPU()
	}
}

// unboundedSize reports whether a configured bound means "no limit".
func unboundedSize(v uint64) bool {
	return v == 0
}
