package main

import (
	"os"

	"github.com/shineart/studiopos/cmd/studio/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
