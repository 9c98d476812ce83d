package main

import (
	"os"

	"github.com/actionplatform/actiongen/pkg/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
