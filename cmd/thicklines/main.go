// Command thicklines replays stroke scripts into a headless drawing session.
package main

import (
	"fmt"
	"os"

	"github.com/ajayparihar/thicklines/internal/cli"
)

// Injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
