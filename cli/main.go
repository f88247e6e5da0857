package main

import (
	"os"

	"github.com/TheMaverickProgrammer/go-yes-parser/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
