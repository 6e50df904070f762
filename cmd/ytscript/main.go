package main

import (
	"os"

	"github.com/nkarpov/ytscript/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
