package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/textact/textact/internal/infrastructure/cli"
)

// version is overridden at build time via -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose(), Version: version}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("TEXTACT_DEBUG"), "1") || strings.EqualFold(os.Getenv("TEXTACT_DEBUG"), "true")
}
