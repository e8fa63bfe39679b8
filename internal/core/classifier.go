package core

// Line classification (C2): turns a file's raw bytes into (total, code,
// comment, blank) line counts using the language's comment/string rules.
// Generalizes AaronTraas-loccount's single-language mode machines
// (stateNORMAL/stateINSTRING/stateINCOMMENT in cFamilyCounter) into one
// state machine driven by data (*LanguageRules) instead of per-language
// Go functions.

// lineKind is the classification result for one line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineCode
	lineComment
)

// classifyState carries the cross-line state a line inherits from the
// previous one: an open string (if any) and a block-comment nesting depth.
type classifyState struct {
	inString     *StringDelim
	inBlockDepth int
	openDelimIdx int // index into rules.BlockComments of the pair currently open
}

// ClassifyResult is the (total, code, comment, blank) output of Classify.
type ClassifyResult struct {
	TotalLines   uint64
	CodeLines    uint64
	CommentLines uint64
	BlankLines   uint64
}

// Classify walks buf once, line by line, applying rules' comment/string
// syntax. A trailing '\r' before '\n' is stripped. A final partial line
// without a trailing newline still counts.
func Classify(buf []byte, rules *LanguageRules, ignoreWhitespace bool) ClassifyResult {
	var res ClassifyResult
	var st classifyState

	n := len(buf)
	i := 0
	for i < n {
		start := i
		for i < n && buf[i] != '\n' {
			i++
		}
		end := i
		if end > start && buf[end-1] == '\r' {
			end--
		}
		line := buf[start:end]
		if i < n {
			i++ // consume '\n'
		}

		kind := classifyLine(line, rules, &st)
		if kind == lineBlank && !ignoreWhitespace && len(line) > 0 {
			// ignore_whitespace=false: a nonempty whitespace-only line does
			// not get the blank exemption, it counts as code.
			kind = lineCode
		}
		res.TotalLines++
		switch kind {
		case lineBlank:
			res.BlankLines++
		case lineComment:
			res.CommentLines++
		case lineCode:
			res.CodeLines++
		}
	}
	return res
}

// classifyLine scans one line's bytes, mutating st for the next line, and
// returns its classification.
func classifyLine(line []byte, rules *LanguageRules, st *classifyState) lineKind {
	sawCode := false
	sawComment := false

	i := 0
	n := len(line)
	for i < n {
		if st.inString != nil {
			d := st.inString
			closed, adv := scanStringClose(line[i:], d)
			if closed {
				st.inString = nil
			}
			sawCode = sawCode || hasNonWhitespace(line[i:i+adv])
			i += adv
			continue
		}

		if st.inBlockDepth > 0 {
			bd := &rules.BlockComments[st.openDelimIdx]
			sawComment = true
			adv, _ := scanBlockComment(line[i:], rules, bd, st)
			i += adv
			continue
		}

		// Try string open, block-comment open, line-comment prefix, in that
		// priority order; longest match wins among same-priority candidates,
		// ties broken by declared order.
		if sd, adv, ok := matchStringOpen(line[i:], rules); ok {
			st.inString = sd
			sawCode = true // the opening delimiter itself is code-context syntax
			i += adv
			continue
		}
		if bIdx, adv, ok := matchBlockOpen(line[i:], rules); ok {
			sawComment = true
			st.inBlockDepth = 1
			st.openDelimIdx = bIdx
			i += adv
			// continue scanning the rest of the line still inside the comment
			rest, _ := scanBlockComment(line[i:], rules, &rules.BlockComments[bIdx], st)
			i += rest
			continue
		}
		if matchLineCommentPrefix(line[i:], rules) {
			sawComment = true
			i = n
			break
		}

		if line[i] != ' ' && line[i] != '\t' && line[i] != '\v' && line[i] != '\f' {
			sawCode = true
		}
		i++
	}

	switch {
	case !sawCode && !sawComment:
		return lineBlank
	case sawComment && !sawCode:
		return lineComment
	default:
		return lineCode
	}
}

func hasNonWhitespace(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' && c != '\v' && c != '\f' {
			return true
		}
	}
	return false
}

func matchStringOpen(rem []byte, rules *LanguageRules) (*StringDelim, int, bool) {
	bestLen := -1
	var best *StringDelim
	for i := range rules.StringDelimiters {
		sd := &rules.StringDelimiters[i]
		if len(sd.Open) == 0 {
			continue
		}
		if hasPrefix(rem, sd.Open) && len(sd.Open) > bestLen {
			bestLen = len(sd.Open)
			best = sd
		}
	}
	if best == nil {
		return nil, 0, false
	}
	return best, len(best.Open), true
}

func matchBlockOpen(rem []byte, rules *LanguageRules) (int, int, bool) {
	bestLen := -1
	bestIdx := -1
	for i := range rules.BlockComments {
		bc := &rules.BlockComments[i]
		if len(bc.Open) == 0 {
			continue
		}
		if hasPrefix(rem, bc.Open) && len(bc.Open) > bestLen {
			bestLen = len(bc.Open)
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return 0, 0, false
	}
	return bestIdx, bestLen, true
}

func matchLineCommentPrefix(rem []byte, rules *LanguageRules) bool {
	bestLen := -1
	for _, p := range rules.LineCommentPrefixes {
		if len(p) == 0 {
			continue
		}
		if hasPrefix(rem, p) && len(p) > bestLen {
			bestLen = len(p)
		}
	}
	return bestLen >= 0
}

func hasPrefix(b []byte, s string) bool {
	if len(b) < len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if b[i] != s[i] {
			return false
		}
	}
	return true
}

// scanStringClose scans rem (the remainder of the line) for the string's
// close delimiter, honoring its escape byte. Returns whether the string
// closed within this line and how many bytes were consumed (either up to
// and including the close, or the whole remainder if it stayed open).
func scanStringClose(rem []byte, d *StringDelim) (closed bool, consumed int) {
	i := 0
	n := len(rem)
	for i < n {
		if d.HasEscape && rem[i] == d.Escape && i+1 < n {
			i += 2
			continue
		}
		if hasPrefix(rem[i:], d.Close) {
			return true, i + len(d.Close)
		}
		i++
	}
	return false, n
}

// scanBlockComment scans rem for the block comment's close, tracking
// nesting depth via st.inBlockDepth when the language allows nested blocks.
// Returns bytes consumed and whether the comment fully closed on this line.
func scanBlockComment(rem []byte, rules *LanguageRules, bd *BlockDelim, st *classifyState) (consumed int, closedAll bool) {
	if bd == nil {
		return len(rem), false
	}
	i := 0
	n := len(rem)
	for i < n {
		if rules.NestedBlocksAllowed && len(bd.Open) > 0 && hasPrefix(rem[i:], bd.Open) {
			st.inBlockDepth++
			i += len(bd.Open)
			continue
		}
		if hasPrefix(rem[i:], bd.Close) {
			st.inBlockDepth--
			i += len(bd.Close)
			if st.inBlockDepth <= 0 {
				st.inBlockDepth = 0
				return i, true
			}
			continue
		}
		i++
	}
	return n, false
}
