package main

import (
	"os"

	"github.com/voidshard/cellart/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
