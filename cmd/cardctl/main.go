// Package main is the entry point for the cardctl CLI.
package main

import (
	"os"

	"github.com/sbilibin2017/gw-card-ledger/cmd/cardctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
