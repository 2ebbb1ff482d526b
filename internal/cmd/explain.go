package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// ExplainCmd shows every status field next to the line rendered from it
type ExplainCmd struct{}

// Run executes the explain command
func (e *ExplainCmd) Run(cli *CLI, k *kong.Context) error {
	ctx, cancel := cli.readContext()
	defer cancel()

	out, err := cli.Container.StatusService.Explain(ctx, cli.GitDir, cli.renderConfig)
	if err != nil {
		return fmt.Errorf("failed to explain %s: %w", cli.GitDir, err)
	}

	fmt.Fprint(k.Stdout, out)
	return nil
}
