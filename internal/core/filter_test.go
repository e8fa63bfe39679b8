package core

import "testing"

func TestPathFilterHiddenSegmentExcludedByDefault(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	if PathFilter(".github/workflows/ci.yml", &opts) {
		t.Error("expected hidden path to be excluded by default")
	}
	opts.IncludeHidden = true
	if !PathFilter(".github/workflows/ci.yml", &opts) {
		t.Error("expected hidden path to be included when IncludeHidden is set")
	}
}

func TestPathFilterIgnoreHiddenFalseIncludesHiddenPaths(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	opts.IgnoreHidden = false
	if !PathFilter(".github/workflows/ci.yml", &opts) {
		t.Error("expected hidden path to be included when IgnoreHidden is disabled")
	}
}

func TestPathFilterIgnoreGitignoreExcludesVendorDirs(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	if PathFilter("vendor/github.com/pkg/errors/errors.go", &opts) {
		t.Error("expected vendor/ to be excluded when IgnoreGitignore is set")
	}
	opts.IgnoreGitignore = false
	opts.CountGenerated = true
	if !PathFilter("vendor/github.com/pkg/errors/errors.go", &opts) {
		t.Error("expected vendor/ to be included once ignore-gitignore and generated exclusion are both disabled")
	}
}

func TestPathFilterGeneratedLikeExcludedUnlessCountGenerated(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	opts.IgnoreGitignore = false
	if PathFilter("web/app.min.js", &opts) {
		t.Error("expected minified-looking file to be excluded by default")
	}
	opts.CountGenerated = true
	if !PathFilter("web/app.min.js", &opts) {
		t.Error("expected minified-looking file to be included when CountGenerated is set")
	}
}

func TestPathFilterTestsExcludedWhenDisabled(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	opts.IncludeTests = false
	if PathFilter("internal/core/classifier_test.go", &opts) {
		t.Error("expected _test.go path to be excluded when IncludeTests is false")
	}
	if PathFilter("tests/fixtures/sample.go", &opts) {
		t.Error("expected tests/ directory to be excluded when IncludeTests is false")
	}
}

func TestPathFilterTestsIncludedByDefault(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	if !PathFilter("internal/core/classifier_test.go", &opts) {
		t.Error("expected _test.go path to be included by default (IncludeTests defaults true)")
	}
}

func TestPathFilterDocsExcludedWhenDisabled(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	opts.IncludeDocs = false
	if PathFilter("docs/guide.md", &opts) {
		t.Error("expected docs/ markdown to be excluded when IncludeDocs is false")
	}
	// A .md outside a docs-like directory is not a "docs path" by this
	// heuristic and is unaffected by IncludeDocs.
	if !PathFilter("README.md", &opts) {
		t.Error("expected top-level README.md to remain included")
	}
}

func TestPathFilterIncludeExcludePatterns(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	opts.IncludePattern = "**/*.go"
	if !PathFilter("internal/core/filter.go", &opts) {
		t.Error("expected .go file to match include pattern")
	}
	if PathFilter("README.md", &opts) {
		t.Error("expected non-matching file to be excluded by include pattern")
	}

	opts = DefaultAnalyzeOptions()
	opts.ExcludePattern = "**/*.md"
	if PathFilter("README.md", &opts) {
		t.Error("expected .md file to be excluded by exclude pattern")
	}
	if !PathFilter("main.go", &opts) {
		t.Error("expected non-matching file to remain included")
	}
}

func TestPathFilterAllowDenyLanguage(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	opts.AllowLanguage = map[LanguageId]struct{}{LangGo: {}}
	if !PathFilter("main.go", &opts) {
		t.Error("expected Go file to pass when Go is allow-listed")
	}
	if PathFilter("main.py", &opts) {
		t.Error("expected Python file to be excluded when only Go is allow-listed")
	}

	opts = DefaultAnalyzeOptions()
	opts.DenyLanguage = map[LanguageId]struct{}{LangPython: {}}
	if PathFilter("main.py", &opts) {
		t.Error("expected Python file to be excluded when Python is deny-listed")
	}
	if !PathFilter("main.go", &opts) {
		t.Error("expected Go file to remain included")
	}
}

func TestPathFilterUnknownExtensionExcludedUnlessPlainText(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	if PathFilter("data.xyz123unknown", &opts) {
		t.Error("expected unrecognized extension to be excluded by default")
	}
	opts.CountUnknownAsPlainText = true
	if !PathFilter("data.xyz123unknown", &opts) {
		t.Error("expected unrecognized extension to be included when CountUnknownAsPlainText is set")
	}
}

func TestPathFilterAggressiveDeniesBinaryExtensions(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	opts.AggressiveFilter = true
	opts.CountUnknownAsPlainText = true
	if PathFilter("assets/logo.png", &opts) {
		t.Error("expected .png to be excluded under aggressive filtering")
	}
}

func TestSizeFilterBounds(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	opts.MaxFileSize = 1000
	opts.MinFileSize = 10

	if !SizeFilter(500, &opts) {
		t.Error("expected in-bounds size to pass")
	}
	if SizeFilter(1001, &opts) {
		t.Error("expected over-max size to fail")
	}
	if SizeFilter(5, &opts) {
		t.Error("expected under-min size to fail")
	}
}

func TestSizeFilterUnboundedWhenMaxIsZero(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	if !SizeFilter(1<<30, &opts) {
		t.Error("expected MaxFileSize=0 to mean unbounded")
	}
}

func TestSizeFilterAggressiveCapsAtOneMiB(t *testing.T) {
	opts := DefaultAnalyzeOptions()
	opts.AggressiveFilter = true
	if SizeFilter(aggressiveMaxFileSize+1, &opts) {
		t.Error("expected aggressive mode to cap file size at 1 MiB")
	}
	if !SizeFilter(aggressiveMaxFileSize, &opts) {
		t.Error("expected exactly 1 MiB to still pass under aggressive mode")
	}
}
