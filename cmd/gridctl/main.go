package main

import "github.com/katalvlaran/lvgrid/internal/cli"

// main is the entry point of the gridctl CLI.
func main() {
	cli.Execute()
}
