package main

import (
	"fmt"
	"os"

	"github.com/vfig/glbdiff/cmd/glbdiff/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "glbdiff: %v\n", err)
		os.Exit(1)
	}
}
