package markdown

import "strings"

// InlineKind identifies the formatting of one inline run.
type InlineKind int

const (
	InlinePlain InlineKind = iota
	InlineBold
	InlineItalic
	InlineCode
	InlineLink
)

// InlineToken is one formatted run of a block's text. Tokens cover the input
// exhaustively and in order; markers (`, ** and friends) are consumed, not
// carried in Text. Links populate URL.
type InlineToken struct {
	Kind InlineKind
	Text string
	URL  string
}

// Inline tokenizes a block's text into formatted runs. At each position the
// rules are tried in fixed order: inline code, bold, italic, link, then a
// plain run up to the next marker character. A marker that opens nothing
// becomes a one-character plain token, so the scan always advances.
func Inline(text string) []InlineToken {
	var tokens []InlineToken

	i := 0
	for i < len(text) {
		if tok, next, ok := matchCode(text, i); ok {
			tokens = append(tokens, tok)
			i = next
			continue
		}
		if tok, next, ok := matchDelimited(text, i, "**", InlineBold); ok {
			tokens = append(tokens, tok)
			i = next
			continue
		}
		if tok, next, ok := matchDelimited(text, i, "__", InlineBold); ok {
			tokens = append(tokens, tok)
			i = next
			continue
		}
		if tok, next, ok := matchDelimited(text, i, "*", InlineItalic); ok {
			tokens = append(tokens, tok)
			i = next
			continue
		}
		if tok, next, ok := matchDelimited(text, i, "_", InlineItalic); ok {
			tokens = append(tokens, tok)
			i = next
			continue
		}
		if tok, next, ok := matchLink(text, i); ok {
			tokens = append(tokens, tok)
			i = next
			continue
		}

		j := i
		for j < len(text) && !isInlineMarker(text[j]) {
			j++
		}
		if j > i {
			tokens = append(tokens, InlineToken{Kind: InlinePlain, Text: text[i:j]})
			i = j
			continue
		}

		// Lone marker with no valid match: emit it as plain and move on.
		tokens = append(tokens, InlineToken{Kind: InlinePlain, Text: text[i : i+1]})
		i++
	}

	return tokens
}

func isInlineMarker(c byte) bool {
	switch c {
	case '`', '*', '_', '[':
		return true
	}
	return false
}

// matchCode matches `code` with non-empty content and no escaping.
func matchCode(text string, i int) (InlineToken, int, bool) {
	if text[i] != '`' {
		return InlineToken{}, 0, false
	}
	rel := strings.IndexByte(text[i+1:], '`')
	if rel < 1 {
		return InlineToken{}, 0, false
	}
	end := i + 1 + rel
	return InlineToken{Kind: InlineCode, Text: text[i+1 : end]}, end + 1, true
}

// matchDelimited matches delim + at least one character + delim, taking the
// earliest possible closer.
func matchDelimited(text string, i int, delim string, kind InlineKind) (InlineToken, int, bool) {
	if !strings.HasPrefix(text[i:], delim) {
		return InlineToken{}, 0, false
	}
	start := i + len(delim)
	if start >= len(text) {
		return InlineToken{}, 0, false
	}
	rel := strings.Index(text[start+1:], delim)
	if rel < 0 {
		return InlineToken{}, 0, false
	}
	end := start + 1 + rel
	return InlineToken{Kind: kind, Text: text[start:end]}, end + len(delim), true
}

// matchLink matches [text](url) with non-empty text and url. Link text may
// not contain ']' and the url may not contain ')'.
func matchLink(text string, i int) (InlineToken, int, bool) {
	if text[i] != '[' {
		return InlineToken{}, 0, false
	}
	relClose := strings.IndexByte(text[i+1:], ']')
	if relClose < 1 {
		return InlineToken{}, 0, false
	}
	closeBracket := i + 1 + relClose
	if closeBracket+1 >= len(text) || text[closeBracket+1] != '(' {
		return InlineToken{}, 0, false
	}
	relParen := strings.IndexByte(text[closeBracket+2:], ')')
	if relParen < 1 {
		return InlineToken{}, 0, false
	}
	closeParen := closeBracket + 2 + relParen
	return InlineToken{
		Kind: InlineLink,
		Text: text[i+1 : closeBracket],
		URL:  text[closeBracket+2 : closeParen],
	}, closeParen + 1, true
}
