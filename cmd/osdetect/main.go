package main

import (
	"os"

	"github.com/dmitrymomot/osdetect/cmd/osdetect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
