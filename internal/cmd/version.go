package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/renato0307/gitprompt/internal/version"
)

// VersionInfoCmd prints build information
type VersionInfoCmd struct{}

// Run executes the version command
func (v *VersionInfoCmd) Run(k *kong.Context) error {
	fmt.Fprintln(k.Stdout, version.Info())
	return nil
}
