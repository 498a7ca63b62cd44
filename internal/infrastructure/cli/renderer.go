package cli

import (
	"strings"

	"github.com/textact/textact/internal/highlight"
	"github.com/textact/textact/internal/markdown"
)

// RenderMarkdown converts AI output in the supported markdown dialect into
// styled terminal text. Consecutive list items stay together; all other
// blocks are separated by a blank line.
func RenderMarkdown(text string) string {
	blocks := markdown.Parse(text)

	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			if sameList(blocks[i-1], block) {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(renderBlock(block))
	}
	return b.String()
}

func renderBlock(block markdown.Block) string {
	switch block.Kind {
	case markdown.BlockHeading:
		return renderHeading(block)
	case markdown.BlockBullet:
		return "  " + styleListMarker.Render("•") + " " + renderInline(block.Text)
	case markdown.BlockNumbered:
		return "  " + styleListMarker.Render(block.Marker) + " " + renderInline(block.Text)
	case markdown.BlockCode:
		return renderCode(block)
	default:
		return renderInline(block.Text)
	}
}

func renderHeading(block markdown.Block) string {
	switch block.Level {
	case 1:
		return styleH1.Render(block.Text)
	case 2:
		return styleH2.Render(block.Text)
	default:
		return styleH3.Render(block.Text)
	}
}

func renderInline(text string) string {
	var b strings.Builder
	for _, tok := range markdown.Inline(text) {
		switch tok.Kind {
		case markdown.InlineBold:
			b.WriteString(styleBold.Render(tok.Text))
		case markdown.InlineItalic:
			b.WriteString(styleItalic.Render(tok.Text))
		case markdown.InlineCode:
			b.WriteString(styleInlineCode.Render(tok.Text))
		case markdown.InlineLink:
			b.WriteString(styleLinkText.Render(tok.Text))
			b.WriteString(styleLinkURL.Render(" (" + tok.URL + ")"))
		default:
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}

func renderCode(block markdown.Block) string {
	lines := strings.Split(block.Code, "\n")
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = renderCodeLine(line, block.Language)
	}

	box := styleCodeBox.Render(strings.Join(rendered, "\n"))
	if block.Language == "" {
		return box
	}
	return styleCodeLang.Render(block.Language) + "\n" + box
}

func renderCodeLine(line, language string) string {
	var b strings.Builder
	for _, tok := range highlight.Line(line, language) {
		b.WriteString(syntaxStyles[tok.Class].Render(tok.Text))
	}
	return b.String()
}

func sameList(prev, cur markdown.Block) bool {
	return isListItem(prev.Kind) && isListItem(cur.Kind)
}

func isListItem(kind markdown.BlockKind) bool {
	return kind == markdown.BlockBullet || kind == markdown.BlockNumbered
}
