package main

import (
	"os"

	"github.com/adhikary/tutorgraph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
