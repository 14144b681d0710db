package main

import (
	"os"

	"github.com/sprite-ai/lintlens/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
