package main

import (
	"os"

	"github.com/abhisek/resiliq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
