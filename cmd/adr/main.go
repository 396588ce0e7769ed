package main

import (
	"os"

	"github.com/bitlake/adr/internal/cli"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	cli.Version = Version
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
