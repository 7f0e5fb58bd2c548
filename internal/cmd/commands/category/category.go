package category

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/discourse-client/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage forum categories"
}

func (c *Command) Help() string {
	return `Usage: discourse-admin category <subcommand> [options] [args]

  This command groups subcommands for managing forum categories.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
