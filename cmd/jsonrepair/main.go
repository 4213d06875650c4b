package main

import (
	"os"

	"github.com/tidewave-oss/jsonrepair/cmd/jsonrepair/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
