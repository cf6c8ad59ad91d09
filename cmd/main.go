// Package main runs the ledger-core CLI.
package main

import (
	"os"

	"github.com/finvera/ledger-core/internal/commands"

	_ "github.com/lib/pq"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
