package main

import (
	"os"

	"github.com/beanbook-dev/beanbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
