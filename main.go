package main

import (
	"fmt"
	"os"

	"github.com/tuannh982/strhash/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "strhash:", err)
		os.Exit(1)
	}
}
