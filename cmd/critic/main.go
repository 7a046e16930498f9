package main

import (
	"os"

	"github.com/rmaia/critic/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
