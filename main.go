package main

import (
	"os"

	"github.com/crewdeck/crewdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
