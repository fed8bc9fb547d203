package main

import (
	"os"

	"github.com/corpusling/connalign/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.New(version).Run(); err != nil {
		os.Exit(1)
	}
}
