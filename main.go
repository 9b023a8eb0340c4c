package main

import (
	"os"

	"github.com/mviorel/learninghub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
