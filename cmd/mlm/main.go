package main

import (
	"os"

	"github.com/bnema/mastodon-list-manager/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
