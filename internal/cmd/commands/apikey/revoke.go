package apikey

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/discourse-client/internal/cmd/base"
)

type RevokeCommand struct {
	*base.Command

	flagConfig string
	flagUserID int64
}

func (c *RevokeCommand) Synopsis() string {
	return "Revoke a user's API key"
}

func (c *RevokeCommand) Help() string {
	return `Usage: discourse-admin apikey revoke -user-id=<id>

  This command revokes the API key for the given user ID.` +
		c.Flags().Help()
}

func (c *RevokeCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("revoke", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to config file (optional).",
	)
	f.Int64Var(
		&c.flagUserID, "user-id", 0, "(Required) Numeric user ID.",
	)

	return f
}

func (c *RevokeCommand) Run(args []string) int {
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

	msg, err := client.RevokeUserAPIKey(context.Background(), c.flagUserID)
	if err != nil {
		ui.Error(fmt.Sprintf("error revoking API key: %v", err))
		return 1
	}

	ui.Info(msg)
	return 0
}
