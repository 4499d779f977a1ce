package main

import (
	"os"

	"github.com/lingolog/lingolog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
