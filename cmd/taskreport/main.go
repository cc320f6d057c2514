// Package main is the entry point for the taskreport CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/taskreport/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
