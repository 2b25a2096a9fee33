// Command asroute summarises the autonomous systems a traceroute passes through.
//
//	traceroute -a example.com | asroute
package main

import (
	"os"

	"github.com/custodia-labs/asroute/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
