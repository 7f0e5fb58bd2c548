package user

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/discourse-client/internal/cmd/base"
)

type LookupCommand struct {
	*base.Command

	flagConfig   string
	flagUsername string
	flagIDOnly   bool
}

func (c *LookupCommand) Synopsis() string {
	return "Look up a forum user by username"
}

func (c *LookupCommand) Help() string {
	return `Usage: discourse-admin user lookup -username=<name>

  This command looks up a user record and prints it as JSON. A user that
  does not exist is reported as "User not found" with exit code 0.` +
		c.Flags().Help()
}

func (c *LookupCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("lookup", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to config file (optional).",
	)
	f.StringVar(
		&c.flagUsername, "username", "", "(Required) Username to look up.",
	)
	f.BoolVar(
		&c.flagIDOnly, "id-only", false,
		"Print only the numeric user ID.",
	)

	return f
}

func (c *LookupCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagUsername == "" {
		ui.Error("username flag is required")
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx := context.Background()

	if c.flagIDOnly {
		lookup, err := client.LookupUserID(ctx, c.flagUsername)
		if err != nil {
			ui.Error(fmt.Sprintf("error looking up user: %v", err))
			return 1
		}
		if !lookup.Found {
			ui.Info(lookup.Message)
			return 0
		}
		ui.Info(fmt.Sprintf("%d", lookup.UserID))
		return 0
	}

	lookup, err := client.LookupUser(ctx, c.flagUsername)
	if err != nil {
		ui.Error(fmt.Sprintf("error looking up user: %v", err))
		return 1
	}
	if !lookup.Found {
		ui.Info(lookup.Message)
		return 0
	}

	out, err := json.MarshalIndent(lookup.User, "", "  ")
	if err != nil {
		ui.Error(fmt.Sprintf("error rendering user: %v", err))
		return 1
	}
	ui.Info(string(out))
	return 0
}
