package main

import (
	"os"

	"github.com/jhoicas/mebel-store/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
