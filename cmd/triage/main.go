// Package main is the entry point for the triage CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/triage/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
