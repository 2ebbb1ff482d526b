package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// PromptCmd prints the status line for the repository enclosing --git-dir
type PromptCmd struct{}

// Run executes the prompt command.
// Outside a working tree nothing is printed and the exit status is 0.
func (p *PromptCmd) Run(cli *CLI, k *kong.Context) error {
	ctx, cancel := cli.readContext()
	defer cancel()

	line, err := cli.Container.StatusService.Prompt(ctx, cli.GitDir, cli.renderConfig)
	if err != nil {
		return err
	}
	if line == "" {
		return nil
	}

	fmt.Fprintln(k.Stdout, line)
	return nil
}
