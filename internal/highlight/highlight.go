// Package highlight is a best-effort, language-aware tokenizer for single
// lines of source code. It drives syntax coloring of fenced code blocks in
// rendered AI responses. It is a heuristic lexer, not a parser: escaped
// quotes, nested block comments, and other real-grammar subtleties are
// accepted limitations.
//
// Tokenization never fails and always covers the whole line: concatenating
// the emitted token texts reproduces the input exactly.
package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Class labels the role of one highlighted span.
type Class string

const (
	ClassKeyword     Class = "keyword"
	ClassString      Class = "string"
	ClassComment     Class = "comment"
	ClassNumber      Class = "number"
	ClassType        Class = "type"
	ClassFunction    Class = "function"
	ClassParameter   Class = "parameter"
	ClassPunctuation Class = "punctuation"
	ClassPlain       Class = "plain"
)

// SyntaxToken is one contiguous span of a highlighted line.
type SyntaxToken struct {
	Text  string
	Class Class
}

// punctuation is the fixed set matched as single-character tokens.
const punctuation = "(){}[]<>,;:.=+-*/%&|!?^~@"

// Line tokenizes one line of code for the given language (free-form name or
// alias, case-insensitive; empty or unrecognized names use a generic table).
// An empty line yields a single plain one-space token so the rendered line
// stays visible.
func Line(line, language string) []SyntaxToken {
	if line == "" {
		return []SyntaxToken{{Text: " ", Class: ClassPlain}}
	}

	words := lookupLanguage(language)

	var tokens []SyntaxToken
	i := 0
	for i < len(line) {
		text, class := nextToken(line[i:])
		tokens = append(tokens, SyntaxToken{Text: text, Class: class})
		i += len(text)
	}

	return reclassify(tokens, words)
}

// nextToken matches the highest-priority pattern anchored at the start of rest.
// It always returns a non-empty text, so the caller makes forward progress.
func nextToken(rest string) (string, Class) {
	switch {
	case strings.HasPrefix(rest, "//"), strings.HasPrefix(rest, "#"):
		return rest, ClassComment

	case strings.HasPrefix(rest, "/*"):
		if end := strings.Index(rest[2:], "*/"); end >= 0 {
			return rest[:end+4], ClassComment
		}
		return rest, ClassComment

	case strings.HasPrefix(rest, `"""`):
		// A triple quote that never closes runs to end of line.
		if end := strings.Index(rest[3:], `"""`); end >= 0 {
			return rest[:end+6], ClassString
		}
		return rest, ClassString

	case rest[0] == '"':
		if end := strings.IndexByte(rest[1:], '"'); end >= 0 {
			return rest[:end+2], ClassString
		}

	case rest[0] == '\'':
		if end := strings.IndexByte(rest[1:], '\''); end >= 0 {
			return rest[:end+2], ClassString
		}
	}

	if isDigit(rest[0]) {
		return scanNumber(rest), ClassNumber
	}

	if isIdentStart(rest[0]) {
		ident := scanIdentifier(rest)
		if len(ident) < len(rest) && rest[len(ident)] == '(' {
			return ident, ClassFunction
		}
		return ident, ClassPlain
	}

	if strings.IndexByte(punctuation, rest[0]) >= 0 {
		return rest[:1], ClassPunctuation
	}

	if isLineSpace(rest[0]) {
		j := 1
		for j < len(rest) && isLineSpace(rest[j]) {
			j++
		}
		return rest[:j], ClassPlain
	}

	// Nothing matched: consume one character so the scan cannot stall.
	_, size := utf8.DecodeRuneInString(rest)
	return rest[:size], ClassPlain
}

// reclassify upgrades plain identifier tokens using the language word sets:
// keywords first, then declared type names or PascalCase-looking words.
func reclassify(tokens []SyntaxToken, words *languageWords) []SyntaxToken {
	for i, tok := range tokens {
		if tok.Class != ClassPlain || !startsWithLetter(tok.Text) {
			continue
		}
		switch {
		case words.keywords[tok.Text]:
			tokens[i].Class = ClassKeyword
		case words.types[tok.Text], looksLikeTypeName(tok.Text):
			tokens[i].Class = ClassType
		}
	}
	return tokens
}

func scanNumber(rest string) string {
	j := 0
	for j < len(rest) && isDigit(rest[j]) {
		j++
	}
	if j+1 < len(rest) && rest[j] == '.' && isDigit(rest[j+1]) {
		j += 2
		for j < len(rest) && isDigit(rest[j]) {
			j++
		}
	}
	return rest[:j]
}

func scanIdentifier(rest string) string {
	j := 1
	for j < len(rest) && isIdentPart(rest[j]) {
		j++
	}
	return rest[:j]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

func isLineSpace(c byte) bool { return c == ' ' || c == '\t' }

func startsWithLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

// looksLikeTypeName is the PascalCase heuristic: leading uppercase and more
// than one character.
func looksLikeTypeName(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r) && utf8.RuneCountInString(s) > 1
}
