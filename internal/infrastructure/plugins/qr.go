package plugins

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// qrPlugin renders the input as a terminal QR code.
type qrPlugin struct{}

func (qrPlugin) Name() string        { return "qr" }
func (qrPlugin) Description() string { return "Render the text as a scannable QR code" }

func (qrPlugin) Run(input string) (string, error) {
	qr, err := qrcode.New(input, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("generate QR code: %w", err)
	}
	return qr.ToSmallString(false), nil
}
