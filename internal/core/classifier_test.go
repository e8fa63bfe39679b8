package core

import "testing"

func TestClassifyGoFile(t *testing.T) {
	src := []byte(`package main

// a line comment
import "fmt"

func main() {
	fmt.Println("hello") // trailing comment
}
`)
	res := Classify(src, RulesFor(LangGo), true)
	if res.BlankLines != 2 {
		t.Errorf("blank lines = %d, want 2", res.BlankLines)
	}
	if res.CommentLines != 1 {
		t.Errorf("comment lines = %d, want 1 (the standalone comment line)", res.CommentLines)
	}
	// code+comment lines together account for the rest.
	if res.TotalLines != res.CodeLines+res.CommentLines+res.BlankLines {
		t.Errorf("invariant violated: total=%d code=%d comment=%d blank=%d",
			res.TotalLines, res.CodeLines, res.CommentLines, res.BlankLines)
	}
}

func TestClassifyBlockComment(t *testing.T) {
	src := []byte(`/*
 * block comment
 * spanning lines
 */
int x = 1;
`)
	res := Classify(src, RulesFor(LangC), true)
	if res.CommentLines != 4 {
		t.Errorf("comment lines = %d, want 4", res.CommentLines)
	}
	if res.CodeLines != 1 {
		t.Errorf("code lines = %d, want 1", res.CodeLines)
	}
}

func TestClassifyNestedBlockComment(t *testing.T) {
	// Rust allows nested block comments.
	src := []byte("/* outer /* inner */ still outer */\nfn f() {}\n")
	res := Classify(src, RulesFor(LangRust), true)
	if res.CommentLines != 1 {
		t.Errorf("comment lines = %d, want 1 (single line, fully closed)", res.CommentLines)
	}
	if res.CodeLines != 1 {
		t.Errorf("code lines = %d, want 1", res.CodeLines)
	}
}

func TestClassifyStringSkipsLineCommentToken(t *testing.T) {
	src := []byte(`x := "http://example.com"` + "\n")
	res := Classify(src, RulesFor(LangGo), true)
	if res.CodeLines != 1 || res.CommentLines != 0 {
		t.Errorf("expected the // inside the string literal not to start a comment: code=%d comment=%d",
			res.CodeLines, res.CommentLines)
	}
}

func TestClassifyBlankLine(t *testing.T) {
	src := []byte("\n   \n\t\n")
	res := Classify(src, RulesFor(LangGo), true)
	if res.BlankLines != 3 {
		t.Errorf("blank lines = %d, want 3", res.BlankLines)
	}
}

func TestClassifyIgnoreWhitespaceFalse(t *testing.T) {
	src := []byte("   \n")
	res := Classify(src, RulesFor(LangGo), false)
	if res.CodeLines != 1 || res.BlankLines != 0 {
		t.Errorf("with ignore_whitespace=false, whitespace-only line should count as code: code=%d blank=%d",
			res.CodeLines, res.BlankLines)
	}
}

func TestClassifyEmptyFile(t *testing.T) {
	res := Classify(nil, RulesFor(LangGo), true)
	if res.TotalLines != 0 {
		t.Errorf("empty file should have total_lines = 0, got %d", res.TotalLines)
	}
}

func TestClassifyNoCommentLanguage(t *testing.T) {
	src := []byte("# Title\n\nSome text.\n")
	res := Classify(src, RulesFor(LangMarkdown), true)
	if res.CommentLines != 0 {
		t.Errorf("Markdown has no comment syntax, comment lines should be 0, got %d", res.CommentLines)
	}
	if res.CodeLines != 2 {
		t.Errorf("code lines = %d, want 2", res.CodeLines)
	}
}
