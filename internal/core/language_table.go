package core

// languageTable is the closed, hand-authored set of recognized languages and
// their comment/string syntax. Order within a language's extension list puts
// the most common extension first; order across languages doesn't matter for
// correctness (buildRegistry sorts extensions by length for suffix
// matching), but more common languages are listed earlier for readability,
// following the style of AaronTraas-loccount's genericLanguages table.
//
// Ambiguity policy (spec): when an extension could plausibly belong to more
// than one language (".h"), the first entry that claims it in this table
// wins; we don't inspect file contents.
var languageTable = []LanguageRules{
	{
		ID:          LangPlainText,
		DisplayName: "Plain Text",
		Extensions:  []string{".txt"},
	},
	{
		ID:                  LangC,
		DisplayName:         "C",
		Extensions:          []string{".c"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		NestedBlocksAllowed: false,
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangCHeader,
		DisplayName:         "C Header",
		Extensions:          []string{".h"}, // wins the .h ambiguity over C++ Header, per policy
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangCPlusPlus,
		DisplayName:         "C++",
		Extensions:          []string{".cpp", ".cxx", ".cc"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangCPlusPlusHeader,
		DisplayName:         "C++ Header",
		Extensions:          []string{".hpp", ".hxx", ".hh"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangObjectiveC,
		DisplayName:         "Objective-C",
		Extensions:          []string{".m", ".mm"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangGo,
		DisplayName:         "Go",
		Extensions:          []string{".go"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: "`", Close: "`"}, // raw string, no escape
		},
	},
	{
		ID:                  LangRust,
		DisplayName:         "Rust",
		Extensions:          []string{".rs"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		NestedBlocksAllowed: true, // Rust block comments nest
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangPython,
		DisplayName:         "Python",
		Extensions:          []string{".py", ".pyw"},
		LineCommentPrefixes: []string{"#"},
		BlockComments:       []BlockDelim{{`"""`, `"""`}, {"'''", "'''"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangJava,
		DisplayName:         "Java",
		Extensions:          []string{".java"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangJavaScript,
		DisplayName:         "JavaScript",
		Extensions:          []string{".js", ".mjs", ".cjs", ".jsx"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
			{Open: "`", Close: "`", Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangTypeScript,
		DisplayName:         "TypeScript",
		Extensions:          []string{".ts", ".tsx"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
			{Open: "`", Close: "`", Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:          LangJSON,
		DisplayName: "JSON",
		Extensions:  []string{".json"},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangYAML,
		DisplayName:         "YAML",
		Extensions:          []string{".yaml", ".yml"},
		LineCommentPrefixes: []string{"#"},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`},
		},
	},
	{
		ID:                  LangTOML,
		DisplayName:         "TOML",
		Extensions:          []string{".toml"},
		Filenames:           []string{"Cargo.lock", "Gopkg.lock"},
		LineCommentPrefixes: []string{"#"},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`},
		},
	},
	{
		ID:          LangMarkdown,
		DisplayName: "Markdown",
		Extensions:  []string{".md", ".markdown"},
		// No comment syntax: per spec §9, comment = 0, everything non-blank is code.
	},
	{
		ID:            LangHTML,
		DisplayName:   "HTML",
		Extensions:    []string{".html", ".htm"},
		BlockComments: []BlockDelim{{"<!--", "-->"}},
	},
	{
		ID:            LangXML,
		DisplayName:   "XML",
		Extensions:    []string{".xml"},
		BlockComments: []BlockDelim{{"<!--", "-->"}},
	},
	{
		ID:            LangCSS,
		DisplayName:   "CSS",
		Extensions:    []string{".css"},
		BlockComments: []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangSCSS,
		DisplayName:         "SCSS",
		Extensions:          []string{".scss"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangShell,
		DisplayName:         "Shell",
		Extensions:          []string{".sh", ".bash", ".zsh"},
		LineCommentPrefixes: []string{"#"},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`},
		},
	},
	{
		ID:                  LangRuby,
		DisplayName:         "Ruby",
		Extensions:          []string{".rb"},
		Filenames:           []string{"Rakefile", "Gemfile"},
		LineCommentPrefixes: []string{"#"},
		BlockComments:       []BlockDelim{{"=begin", "=end"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangPHP,
		DisplayName:         "PHP",
		Extensions:          []string{".php"},
		LineCommentPrefixes: []string{"//", "#"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangCSharp,
		DisplayName:         "C#",
		Extensions:          []string{".cs"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangSwift,
		DisplayName:         "Swift",
		Extensions:          []string{".swift"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		NestedBlocksAllowed: true,
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangKotlin,
		DisplayName:         "Kotlin",
		Extensions:          []string{".kt", ".kts"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		NestedBlocksAllowed: true,
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangSQL,
		DisplayName:         "SQL",
		Extensions:          []string{".sql"},
		LineCommentPrefixes: []string{"--"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangHaskell,
		DisplayName:         "Haskell",
		Extensions:          []string{".hs"},
		LineCommentPrefixes: []string{"--"},
		BlockComments:       []BlockDelim{{"{-", "-}"}},
		NestedBlocksAllowed: true,
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangLua,
		DisplayName:         "Lua",
		Extensions:          []string{".lua"},
		LineCommentPrefixes: []string{"--"},
		BlockComments:       []BlockDelim{{"--[[", "]]"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangPerl,
		DisplayName:         "Perl",
		Extensions:          []string{".pl", ".pm"},
		LineCommentPrefixes: []string{"#"},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangMakefile,
		DisplayName:         "Makefile",
		Extensions:          []string{".mk"},
		Filenames:           []string{"Makefile", "makefile", "GNUmakefile"},
		LineCommentPrefixes: []string{"#"},
	},
	{
		ID:                  LangScala,
		DisplayName:         "Scala",
		Extensions:          []string{".scala"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		NestedBlocksAllowed: true,
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangDart,
		DisplayName:         "Dart",
		Extensions:          []string{".dart"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		NestedBlocksAllowed: true,
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangElixir,
		DisplayName:         "Elixir",
		Extensions:          []string{".ex", ".exs"},
		LineCommentPrefixes: []string{"#"},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangR,
		DisplayName:         "R",
		Extensions:          []string{".r", ".R"},
		LineCommentPrefixes: []string{"#"},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
			{Open: `'`, Close: `'`, Escape: '\\', HasEscape: true},
		},
	},
	{
		ID:                  LangINI,
		DisplayName:         "INI",
		Extensions:          []string{".ini", ".cfg"},
		LineCommentPrefixes: []string{";", "#"},
	},
	{
		ID:                  LangDockerfile,
		DisplayName:         "Dockerfile",
		Filenames:           []string{"Dockerfile"},
		Extensions:          []string{".dockerfile"},
		LineCommentPrefixes: []string{"#"},
	},
	{
		ID:                  LangProtobuf,
		DisplayName:         "Protocol Buffers",
		Extensions:          []string{".proto"},
		LineCommentPrefixes: []string{"//"},
		BlockComments:       []BlockDelim{{"/*", "*/"}},
		StringDelimiters: []StringDelim{
			{Open: `"`, Close: `"`, Escape: '\\', HasEscape: true},
		},
	},
}
