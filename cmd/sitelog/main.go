// Package main is the entry point for the sitelog CLI/TUI.
package main

import (
	"os"

	"github.com/samueldoiron-bot/sitelog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
