package main

import (
	"os"

	"github.com/wjiaha0/hanzi/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
