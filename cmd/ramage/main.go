package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/ramage/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI,
		kong.Name("ramage"),
		kong.Description("Load key/value records into a trie, look keys up and search its nodes."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(cli.NewContext(cli.CLI.LogLevel, os.Stdout)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
