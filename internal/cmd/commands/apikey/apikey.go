package apikey

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/discourse-client/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage per-user API keys"
}

func (c *Command) Help() string {
	return `Usage: discourse-admin apikey <subcommand> [options] [args]

  This command groups subcommands for managing per-user API keys.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
