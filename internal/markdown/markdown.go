// Package markdown parses the restricted dialect used for rendering AI
// responses: headings (levels 1-3), bullet and numbered list items,
// paragraphs, and fenced code blocks. It is a deliberately small subset,
// not a CommonMark implementation.
//
// Parsing never fails: any input produces some valid block sequence.
package markdown

import "strings"

// BlockKind identifies the structural role of a parsed block.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockBullet
	BlockNumbered
	BlockParagraph
	BlockCode
)

// Block is one markdown structural unit. Fields beyond Kind are populated
// by kind: headings carry Level and Text, bullet items carry Text, numbered
// items carry Marker and Text, paragraphs carry Text, code blocks carry
// Language and Code.
type Block struct {
	Kind     BlockKind
	Level    int
	Marker   string
	Text     string
	Language string
	Code     string
}

// Parse splits text into blocks in a single pass over its lines.
func Parse(text string) []Block {
	lines := strings.Split(text, "\n")
	var blocks []Block

	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		switch {
		case strings.HasPrefix(trimmed, "```"):
			block, next := parseFence(lines, i, trimmed)
			blocks = append(blocks, block)
			i = next

		case headingLevel(trimmed) > 0:
			level := headingLevel(trimmed)
			blocks = append(blocks, Block{
				Kind:  BlockHeading,
				Level: level,
				Text:  headingText(trimmed, level),
			})
			i++

		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			blocks = append(blocks, Block{Kind: BlockBullet, Text: trimmed[2:]})
			i++

		case isNumberedItem(trimmed):
			marker, text := splitNumbered(trimmed)
			blocks = append(blocks, Block{Kind: BlockNumbered, Marker: marker, Text: text})
			i++

		case trimmed == "":
			i++

		default:
			text, next := parseParagraph(lines, i)
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: text})
			i = next
		}
	}

	return blocks
}

// parseFence consumes a fenced code block starting at lines[i]. The language
// tag is the trimmed remainder of the opening fence line. Body lines are kept
// verbatim until a closing fence (consumed and discarded) or input end.
func parseFence(lines []string, i int, trimmed string) (Block, int) {
	language := strings.TrimSpace(trimmed[3:])

	var body []string
	j := i + 1
	for j < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[j]), "```") {
			j++
			break
		}
		body = append(body, lines[j])
		j++
	}

	return Block{
		Kind:     BlockCode,
		Language: language,
		Code:     strings.Join(body, "\n"),
	}, j
}

// headingLevel returns 1-3 for a line opening with that many '#', or 0 when
// the line is not a heading (including runs of four or more '#').
func headingLevel(trimmed string) int {
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	if n < 1 || n > 3 {
		return 0
	}
	return n
}

// headingText strips the '#' run and at most one following space.
func headingText(trimmed string, level int) string {
	rest := trimmed[level:]
	if strings.HasPrefix(rest, " ") {
		rest = rest[1:]
	}
	return rest
}

// isNumberedItem reports whether the line starts with digits, a dot, and at
// least one whitespace character.
func isNumberedItem(trimmed string) bool {
	_, _, ok := numberedParts(trimmed)
	return ok
}

// splitNumbered returns the "12." marker and the text after the whitespace run.
func splitNumbered(trimmed string) (marker, text string) {
	marker, text, _ = numberedParts(trimmed)
	return marker, text
}

func numberedParts(s string) (marker, text string, ok bool) {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 || n >= len(s) || s[n] != '.' {
		return "", "", false
	}

	rest := s[n+1:]
	w := 0
	for w < len(rest) && isLineSpace(rest[w]) {
		w++
	}
	if w == 0 {
		return "", "", false
	}
	return s[:n+1], rest[w:], true
}

func isLineSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}

// parseParagraph accumulates consecutive non-blank, non-opener lines starting
// at lines[i], joining their trimmed forms with single spaces. Leading
// indentation is lost in the join; prose blocks are treated as reflowable.
func parseParagraph(lines []string, i int) (string, int) {
	var parts []string
	j := i
	for j < len(lines) {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" || opensBlock(trimmed) {
			break
		}
		parts = append(parts, trimmed)
		j++
	}
	return strings.Join(parts, " "), j
}

// opensBlock reports whether a trimmed line starts a non-paragraph block.
func opensBlock(trimmed string) bool {
	if strings.HasPrefix(trimmed, "```") {
		return true
	}
	if headingLevel(trimmed) > 0 {
		return true
	}
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return true
	}
	return isNumberedItem(trimmed)
}
