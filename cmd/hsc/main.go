package main

import (
	"os"

	"github.com/cwbudde/go-hsc/cmd/hsc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
