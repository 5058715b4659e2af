// Package main provides the entry point for the seal CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/seal/internal/cli"
	"github.com/mrz1836/seal/internal/signal"
)

// Set via ldflags at build time.
//
//nolint:gochecknoglobals // ldflags targets
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	os.Exit(run())
}

func run() int {
	h := signal.NewHandler(context.Background())
	defer h.Stop()
	defer cli.CloseLogFile()

	err := cli.Execute(h.Context(), cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	if code := h.ExitCode(); code != 0 {
		return code
	}
	return cli.ExitCodeForError(err)
}
