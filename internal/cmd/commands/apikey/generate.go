package apikey

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/discourse-client/internal/cmd/base"
)

type GenerateCommand struct {
	*base.Command

	flagConfig string
	flagUserID int64
}

func (c *GenerateCommand) Synopsis() string {
	return "Generate an API key for a user"
}

func (c *GenerateCommand) Help() string {
	return `Usage: discourse-admin apikey generate -user-id=<id>

  This command generates (or rotates) the API key for the given user ID
  and prints the key.` +
		c.Flags().Help()
}

func (c *GenerateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("generate", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to config file (optional).",
	)
	f.Int64Var(
		&c.flagUserID, "user-id", 0, "(Required) Numeric user ID.",
	)

	return f
}

func (c *GenerateCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagUserID <= 0 {
		ui.Error("user-id flag is required and must be positive")
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	key, err := client.GenerateUserAPIKey(context.Background(), c.flagUserID)
	if err != nil {
		ui.Error(fmt.Sprintf("error generating API key: %v", err))
		return 1
	}

	ui.Info(key)
	return 0
}
