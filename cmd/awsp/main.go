// Package main is the entry point for awsp.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jmreicha/awsp/internal/cli"
	"github.com/jmreicha/awsp/internal/core"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := cli.NewRootCmd(version)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil && !errors.Is(err, core.ErrCancelled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	return int(core.MapExitCode(err))
}
