package main

import (
	"os"

	"github.com/limaJavier/regroup/internal/cli"
)

// Build-time version information, injected via ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.SetVersion(version, commit)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
