package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration. It is
// written verbatim to ~/.textact/config.yaml on first run so the shipped
// comments survive.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte
