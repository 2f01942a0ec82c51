// Package main is the command-line interface to the IAL interpreter.
package main

import (
	"context"
	"os"

	"github.com/ial-lang/interp/internal/cli"
	"github.com/ial-lang/interp/internal/cli/cmd"
)

var commands = []cli.Command{
	cmd.Interpret(),
}

// Entry point.
func main() {
	result :=
		cli.New(context.Background()).
			WithLogger(os.Stderr).
			WithCommands(commands).
			WithHelp(cmd.Help(commands)).
			Execute(os.Args[1:])

	os.Exit(result)
}
