// Package minify implements the naive textual minification used for this
// project's hand-authored JavaScript and CSS. The transforms are regex
// heuristics rather than a parser: good enough for our own small files,
// with known limits around template literals and regex literals.
package minify

import (
	"regexp"
	"strings"
)

// blockComment matches /* ... */ comments, including ones spanning lines.
// The unrolled pattern stops at the first closing */ without lazy matching.
// It has no idea whether the /* sits inside a string or regex literal.
var blockComment = regexp.MustCompile(`/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`)

// whitespaceRun matches any run of whitespace, newlines included.
var whitespaceRun = regexp.MustCompile(`\s+`)

// punctRule trims whitespace from both sides of one punctuation token.
type punctRule struct {
	re  *regexp.Regexp
	tok string
}

func newPunctRules(tokens string) []punctRule {
	rules := make([]punctRule, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := string(tokens[i])
		rules[i] = punctRule{
			re:  regexp.MustCompile(`\s*` + regexp.QuoteMeta(tok) + `\s*`),
			tok: tok,
		}
	}
	return rules
}

// Trim order matters: each rule is applied globally before the next one.
var (
	jsPunct  = newPunctRules(";{}(),")
	cssPunct = newPunctRules("{};:")
)

// JS compacts JavaScript source text: block comments go first, then line
// comments (string-aware, per line), then whitespace collapses to single
// spaces and spacing around ; { } ( ) , is dropped. Always returns a
// result; correctness on malformed input is not promised.
func JS(src string) string {
	src = blockComment.ReplaceAllString(src, "")
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lines[i] = stripLineComment(line)
	}
	src = strings.Join(lines, "\n")
	src = whitespaceRun.ReplaceAllString(src, " ")
	for _, r := range jsPunct {
		src = r.re.ReplaceAllLiteralString(src, r.tok)
	}
	return strings.TrimSpace(src)
}

// CSS compacts stylesheet text: block comments stripped, whitespace
// collapsed, spacing around { } ; : dropped, and the redundant semicolon
// before a closing brace removed.
func CSS(src string) string {
	src = blockComment.ReplaceAllString(src, "")
	src = whitespaceRun.ReplaceAllString(src, " ")
	for _, r := range cssPunct {
		src = r.re.ReplaceAllLiteralString(src, r.tok)
	}
	src = strings.ReplaceAll(src, ";}", "}")
	return strings.TrimSpace(src)
}

// stripLineComment drops a trailing // comment from a single line while
// leaving // sequences inside string literals alone (URLs, mostly). Inside
// a string a backslash copies itself plus the next byte, so escaped quotes
// do not toggle state. Quote state does not survive past the end of the
// line: a template literal spanning lines is mishandled, and there is no
// awareness of regex literals.
func stripLineComment(line string) string {
	var out strings.Builder
	quoteOpen := false
	var quoteChar byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if !quoteOpen && c == '/' && i+1 < len(line) && line[i+1] == '/' {
			break
		}
		out.WriteByte(c)
		if c == '"' || c == '\'' || c == '`' {
			if !quoteOpen {
				quoteOpen = true
				quoteChar = c
			} else if quoteChar == c {
				quoteOpen = false
				quoteChar = 0
			}
		}
		if c == '\\' && quoteOpen && i+1 < len(line) {
			out.WriteByte(line[i+1])
			i++
		}
	}
	return out.String()
}
