package main

import (
	"log/slog"
	"os"

	"github.com/wikimentor/wiki-mentor/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		slog.Error("application failed to run", "error", err)
		os.Exit(1)
	}
}
