package category

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/discourse-client/internal/cmd/base"
)

type CreateTopicCommand struct {
	*base.Command

	flagConfig string
	flagName   string
	flagColor  string
}

func (c *CreateTopicCommand) Synopsis() string {
	return "Create a top-level community topic category"
}

func (c *CreateTopicCommand) Help() string {
	return `Usage: discourse-admin category create-topic -name=<name> -color=<hex>

  This command creates a top-level community topic category with default
  styling.` +
		c.Flags().Help()
}

func (c *CreateTopicCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("create-topic", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to config file (optional).",
	)
	f.StringVar(
		&c.flagName, "name", "", "(Required) Topic name.",
	)
	f.StringVar(
		&c.flagColor, "color", "", "(Required) Topic color as a hex code.",
	)

	return f
}

func (c *CreateTopicCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagName == "" || c.flagColor == "" {
		ui.Error("name and color flags are required")
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	category, err := client.CreateCommunityTopic(
		context.Background(), c.flagName, c.flagColor)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating community topic: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf("Created community topic %q (ID %d)", category.Name, category.ID))
	return 0
}
