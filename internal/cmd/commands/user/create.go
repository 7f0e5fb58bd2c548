package user

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/discourse-client/internal/cmd/base"
	"github.com/hashicorp-forge/discourse-client/pkg/discourse"
)

type CreateCommand struct {
	*base.Command

	flagConfig   string
	flagName     string
	flagEmail    string
	flagPassword string
}

func (c *CreateCommand) Synopsis() string {
	return "Create an active forum user"
}

func (c *CreateCommand) Help() string {
	return `Usage: discourse-admin user create -name=<name> -email=<email> -password=<password>

  This command creates a new active user. Server-side validation failures
  (password too short, email taken, ...) are printed per field.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("create", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to config file (optional).",
	)
	f.StringVar(
		&c.flagName, "name", "", "(Required) Name, used as both display name and username.",
	)
	f.StringVar(
		&c.flagEmail, "email", "", "(Required) Email address.",
	)
	f.StringVar(
		&c.flagPassword, "password", "", "(Required) Password.",
	)

	return f
}

func (c *CreateCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagName == "" || c.flagEmail == "" || c.flagPassword == "" {
		ui.Error("name, email and password flags are required")
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	created, err := client.CreateUser(
		context.Background(), c.flagName, c.flagEmail, c.flagPassword)
	if err != nil {
		var vErr *discourse.ValidationError
		if errors.As(err, &vErr) {
			ui.Error("user was rejected by server-side validation:")
			for field, messages := range vErr.Fields {
				for _, msg := range messages {
					ui.Error(fmt.Sprintf("  %s: %s", field, msg))
				}
			}
			return 1
		}
		ui.Error(fmt.Sprintf("error creating user: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf("Created user %q (ID %d)", c.flagName, created.UserID))
	if created.Message != "" {
		ui.Info(created.Message)
	}
	return 0
}
