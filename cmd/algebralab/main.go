package main

import (
	"os"

	"github.com/algebralab/algebralab/cmd/algebralab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
