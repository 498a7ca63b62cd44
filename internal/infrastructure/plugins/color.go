package plugins

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// colorPlugin turns a hex color into its RGB and HSL forms.
type colorPlugin struct{}

func (colorPlugin) Name() string        { return "color" }
func (colorPlugin) Description() string { return "Convert a hex color to RGB and HSL" }

func (colorPlugin) Run(input string) (string, error) {
	hex := strings.TrimSpace(input)
	if hex == "" {
		return "", fmt.Errorf("no color given: expected a hex value like #1e90ff")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("parse color %q: %w", strings.TrimSpace(input), err)
	}

	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	return fmt.Sprintf("hex: %s\nrgb: rgb(%d, %d, %d)\nhsl: hsl(%.0f, %.0f%%, %.0f%%)",
		c.Hex(), r, g, b, h, s*100, l*100), nil
}
