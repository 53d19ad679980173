package main

import (
	"os"

	"github.com/vishant-raz/notion-gpt-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
