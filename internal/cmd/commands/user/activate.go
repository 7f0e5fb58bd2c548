package user

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/discourse-client/internal/cmd/base"
	"github.com/hashicorp-forge/discourse-client/pkg/discourse"
)

// ActivateCommand toggles a user's active flag. It backs both the
// "user activate" and "user deactivate" subcommands.
type ActivateCommand struct {
	*base.Command

	// Active selects the direction of the toggle.
	Active bool

	flagConfig   string
	flagUsername string
}

func (c *ActivateCommand) verb() string {
	if c.Active {
		return "activate"
	}
	return "deactivate"
}

func (c *ActivateCommand) Synopsis() string {
	if c.Active {
		return "Reactivate a deactivated forum user"
	}
	return "Deactivate a forum user"
}

func (c *ActivateCommand) Help() string {
	return fmt.Sprintf(`Usage: discourse-admin user %s -username=<name>

  This command %ss the given user. A user that does not exist is reported
  as "User not found" with exit code 0.`, c.verb(), c.verb()) +
		c.Flags().Help()
}

func (c *ActivateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet(c.verb(), flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to config file (optional).",
	)
	f.StringVar(
		&c.flagUsername, "username", "", "(Required) Username to "+c.verb()+".",
	)

	return f
}

func (c *ActivateCommand) Run(args []string) int {
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
	var status string
	if c.Active {
		status, err = client.ReactivateUser(ctx, c.flagUsername)
	} else {
		status, err = client.DeactivateUser(ctx, c.flagUsername)
	}
	if err != nil {
		ui.Error(fmt.Sprintf("error %sing user: %v", c.verb(), err))
		return 1
	}

	if status == discourse.NotFoundMessage {
		ui.Info(status)
		return 0
	}
	ui.Info(fmt.Sprintf("User %q %sd: %s", c.flagUsername, c.verb(), status))
	return 0
}
