package main

import (
	"github.com/tacogips/scmver/internal/cli"
)

func main() {
	// Execute the root command
	cli.Execute()
}
