package main

import (
	"os"

	"github.com/mlihgenel/medianexus-cli/cmd"
)

var (
	version = "1.0.0"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, date)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
