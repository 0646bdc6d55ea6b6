package main

import (
	"os"

	"github.com/bnema/matchy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
