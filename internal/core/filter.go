package core

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultIgnoreDirs mirrors AaronTraas-loccount's neverInterestingByPrefix/
// Basename tables, generalized from "don't count this directory" to the
// spec's gitignore-like ignore set (§6).
var defaultIgnoreDirs = map[string]struct{}{
	"node_modules": {},
	"target":       {},
	".git":         {},
	"dist":         {},
	"build":        {},
	".venv":        {},
	"venv":         {},
	".idea":        {},
	".vscode":      {},
	"__pycache__":  {},
	".next":        {},
	"vendor":       {},
}

var generatedDirs = map[string]struct{}{
	"vendor":       {},
	"third_party":  {},
	"node_modules": {},
	"dist":         {},
	"build":        {},
}

var testDirSegments = map[string]struct{}{
	"test":      {},
	"tests":     {},
	"__tests__": {},
	"spec":      {},
	"specs":     {},
}

var docsDirSegments = map[string]struct{}{
	"doc":           {},
	"docs":          {},
	"documentation": {},
}

var docsExtensions = map[string]struct{}{
	".md":   {},
	".rst":  {},
	".adoc": {},
	".txt":  {},
}

// aggressiveDenyExtensions are skipped outright under AggressiveFilter, on
// top of the language registry simply not recognizing binary formats.
var aggressiveDenyExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".ico": {}, ".woff": {},
	".woff2": {}, ".ttf": {}, ".eot": {}, ".pdf": {}, ".zip": {}, ".gz": {},
	".tar": {}, ".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".class": {},
	".jar": {}, ".o": {}, ".a": {}, ".wasm": {},
}

const aggressiveMaxFileSize = 1 << 20 // 1 MiB

// PathFilter decides whether a tar entry's path should be analyzed, before
// its bytes (or even its size) are known. Applied first; the size filter
// runs once the header's size field is available.
func PathFilter(entryPath string, opts *AnalyzeOptions) bool {
	cleanPath := strings.TrimPrefix(path.Clean(entryPath), "/")
	segments := strings.Split(cleanPath, "/")
	base := segments[len(segments)-1]

	if opts.IgnoreHidden && !opts.IncludeHidden && hasHiddenSegment(segments) {
		return false
	}

	if opts.IgnoreGitignore {
		for _, seg := range segments[:len(segments)-1] {
			if _, ignored := defaultIgnoreDirs[seg]; ignored {
				return false
			}
		}
	}

	if !opts.CountGenerated && isGeneratedLike(segments, base) {
		return false
	}

	if !opts.IncludeTests && isTestPath(segments, base) {
		return false
	}

	if !opts.IncludeDocs && isDocsPath(segments, base) {
		return false
	}

	if opts.IncludePattern != "" {
		if ok, _ := doublestar.Match(opts.IncludePattern, cleanPath); !ok {
			return false
		}
	}
	if opts.ExcludePattern != "" {
		if ok, _ := doublestar.Match(opts.ExcludePattern, cleanPath); ok {
			return false
		}
	}

	if lang, ok := LookupByPath(base); ok {
		if opts.DenyLanguage != nil {
			if _, denied := opts.DenyLanguage[lang]; denied {
				return false
			}
		}
		if opts.AllowLanguage != nil {
			if _, allowed := opts.AllowLanguage[lang]; !allowed {
				return false
			}
		}
	} else if !opts.CountUnknownAsPlainText {
		return false
	}

	if opts.AggressiveFilter {
		ext := strings.ToLower(path.Ext(base))
		if _, denied := aggressiveDenyExtensions[ext]; denied {
			return false
		}
		if isMinified(base) {
			return false
		}
	}

	return true
}

// SizeFilter decides whether an entry of the given size should be analyzed,
// once the tar header's size field is known.
func SizeFilter(size uint64, opts *AnalyzeOptions) bool {
	if opts.AggressiveFilter && size > aggressiveMaxFileSize {
		return false
	}
	if !unboundedSize(opts.MaxFileSize) && size > opts.MaxFileSize {
		return false
	}
	if size < opts.MinFileSize {
		return false
	}
	return true
}

func hasHiddenSegment(segments []string) bool {
	for _, seg := range segments {
		if len(seg) > 1 && seg[0] == '.' {
			return true
		}
	}
	return false
}

func isGeneratedLike(segments []string, base string) bool {
	for _, seg := range segments[:len(segments)-1] {
		if _, ok := generatedDirs[seg]; ok {
			return true
		}
	}
	lowerBase := strings.ToLower(base)
	switch {
	case strings.HasSuffix(lowerBase, ".min.js"),
		strings.HasSuffix(lowerBase, ".bundle.js"),
		strings.Contains(lowerBase, "-lock."),
		strings.Contains(lowerBase, ".generated."):
		return true
	}
	return false
}

func isMinified(base string) bool {
	lowerBase := strings.ToLower(base)
	return strings.Contains(lowerBase, ".min.")
}

func isTestPath(segments []string, base string) bool {
	for _, seg := range segments[:len(segments)-1] {
		if _, ok := testDirSegments[strings.ToLower(seg)]; ok {
			return true
		}
	}
	lowerBase := strings.ToLower(base)
	return strings.Contains(lowerBase, "_test.") ||
		strings.Contains(lowerBase, ".test.") ||
		strings.Contains(lowerBase, ".spec.")
}

func isDocsPath(segments []string, base string) bool {
	underDocs := false
	for _, seg := range segments[:len(segments)-1] {
		if _, ok := docsDirSegments[strings.ToLower(seg)]; ok {
			underDocs = true
			break
		}
	}
	if !underDocs {
		return false
	}
	ext := strings.ToLower(path.Ext(base))
	_, ok := docsExtensions[ext]
	return ok
}
