// Package clipboard integrates with the system clipboard.
package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"

	"github.com/textact/textact/internal/ports"
)

// System implements ports.Clipboard on top of the platform clipboard.
type System struct{}

// NewSystem builds the clipboard helper.
func NewSystem() *System {
	return &System{}
}

// Enabled reports whether a clipboard is available on this platform.
func (c *System) Enabled() bool {
	return !atotto.Unsupported
}

// Read returns the current clipboard text.
func (c *System) Read() (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("clipboard not supported on this platform")
	}
	text, err := atotto.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

// Copy places text on the clipboard.
func (c *System) Copy(text string) error {
	if !c.Enabled() {
		return fmt.Errorf("clipboard not supported on this platform")
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

var _ ports.Clipboard = (*System)(nil)
