package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/textact/textact/internal/highlight"
)

// Color palette shared by the renderer and command output.
var (
	colorText    = lipgloss.Color("#E2E2E2")
	colorGray    = lipgloss.Color("#888888")
	colorDim     = lipgloss.Color("#444444")
	colorBlue    = lipgloss.Color("#5FAFFF")
	colorGreen   = lipgloss.Color("#5FD787")
	colorYellow  = lipgloss.Color("#FFD787")
	colorRed     = lipgloss.Color("#FF8787")
	colorMagenta = lipgloss.Color("#D787FF")
	colorCyan    = lipgloss.Color("#87D7D7")
	colorOrange  = lipgloss.Color("#FFAF87")
)

// Markdown rendering styles.
var (
	styleH1         = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	styleH2         = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	styleH3         = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	styleListMarker = lipgloss.NewStyle().Foreground(colorBlue)
	styleBold       = lipgloss.NewStyle().Bold(true)
	styleItalic     = lipgloss.NewStyle().Italic(true)
	styleInlineCode = lipgloss.NewStyle().Foreground(colorOrange)
	styleLinkText   = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleLinkURL    = lipgloss.NewStyle().Foreground(colorGray)
	styleCodeLang   = lipgloss.NewStyle().Foreground(colorGray)
	styleCodeBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// Status and metadata styles for command output.
var (
	styleOK    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleWarn  = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	styleFail  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleMuted = lipgloss.NewStyle().Foreground(colorGray)
	styleEmph  = lipgloss.NewStyle().Bold(true)
)

// syntaxStyles maps highlighter classes to terminal styles. Classes without
// an entry render unstyled.
var syntaxStyles = map[highlight.Class]lipgloss.Style{
	highlight.ClassKeyword:     lipgloss.NewStyle().Foreground(colorMagenta),
	highlight.ClassString:      lipgloss.NewStyle().Foreground(colorGreen),
	highlight.ClassComment:     lipgloss.NewStyle().Foreground(colorGray).Italic(true),
	highlight.ClassNumber:      lipgloss.NewStyle().Foreground(colorYellow),
	highlight.ClassType:        lipgloss.NewStyle().Foreground(colorCyan),
	highlight.ClassFunction:    lipgloss.NewStyle().Foreground(colorBlue),
	highlight.ClassParameter:   lipgloss.NewStyle().Foreground(colorOrange),
	highlight.ClassPunctuation: lipgloss.NewStyle().Foreground(colorGray),
	highlight.ClassPlain:       lipgloss.NewStyle().Foreground(colorText),
}
