package main

import (
	"fmt"
	"os"

	"github.com/abhisek/softskills/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "\nError:", err)
		os.Exit(1)
	}
}
