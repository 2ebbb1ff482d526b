package main

import (
	"fmt"
	"os"

	"github.com/renato0307/gitprompt/internal/cmd"
	"github.com/renato0307/gitprompt/internal/config"
)

func main() {
	var cli cmd.CLI

	// Load settings from $GITPROMPT_HOME/settings.yaml
	// A load error is returned by the CLI hooks so --quiet can silence it
	cli.SetSettings(config.LoadSettings())

	parser, err := cmd.NewParser(&cli)
	if err != nil {
		fail(&cli, err)
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fail(&cli, err)
	}

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		fail(&cli, err)
	}
}

func fail(cli *cmd.CLI, err error) {
	if !cli.Quiet {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
