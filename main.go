package main

import (
	"os"

	"github.com/pkritika/cortex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
