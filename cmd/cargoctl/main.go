// Package main is the entry point for cargoctl.
package main

import "github.com/guttosm/cargo-service/internal/cli"

// Set at build time via -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Main()
}
