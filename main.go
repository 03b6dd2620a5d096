package main

import (
	"os"

	"github.com/abhisek/lingo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
