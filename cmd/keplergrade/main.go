// Package main is the entry point for the keplergrade CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/keplergrade/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
