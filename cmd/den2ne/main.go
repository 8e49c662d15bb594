// Command den2ne is the CLI entrypoint for the decentralized
// power-routing engine: it loads one topology directory, builds the
// graph for a single (root, timestep) pair, and runs the propagate →
// select → balance pipeline under one or all six criteria.
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

// commands is the mapping of all available den2ne commands. There is
// only one today; the map exists so the wiring matches the shape a
// second subcommand (e.g. a future "validate") would slot into.
var commands map[string]cli.CommandFactory

// Ui is the cli.Ui used for communicating to the outside world.
var Ui cli.Ui

func init() {
	Ui = &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	commands = map[string]cli.CommandFactory{
		"run": func() (cli.Command, error) {
			return &RunCommand{Ui: Ui}, nil
		},
	}
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cliRunner := &cli.CLI{
		Name:       "den2ne",
		Args:       os.Args[1:],
		Commands:   commands,
		HelpFunc:   cli.BasicHelpFunc("den2ne"),
		HelpWriter: os.Stdout,
	}

	exitCode, err := cliRunner.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err.Error())
		return 1
	}

	return exitCode
}
