package category

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/discourse-client/internal/cmd/base"
)

type CreateCommand struct {
	*base.Command

	flagConfig      string
	flagName        string
	flagColor       string
	flagParentID    int64
	flagDescription string
	flagIcon        string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a forum category"
}

func (c *CreateCommand) Help() string {
	return `Usage: discourse-admin category create -name=<name> -color=<hex>

  This command creates a category. A parent category ID makes it a
  subcategory.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("create", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to config file (optional).",
	)
	f.StringVar(
		&c.flagName, "name", "", "(Required) Category name.",
	)
	f.StringVar(
		&c.flagColor, "color", "", "(Required) Category color as a hex code, e.g. 0088CC.",
	)
	f.Int64Var(
		&c.flagParentID, "parent-id", 0,
		"Parent category ID; 0 creates a top-level category.",
	)
	f.StringVar(
		&c.flagDescription, "description", "", "Category description.",
	)
	f.StringVar(
		&c.flagIcon, "icon", "", "Category icon.",
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

	if c.flagName == "" || c.flagColor == "" {
		ui.Error("name and color flags are required")
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	category, err := client.CreateCategory(
		context.Background(),
		c.flagName, c.flagColor, c.flagParentID, c.flagDescription, c.flagIcon)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating category: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf("Created category %q (ID %d, slug %s)",
		category.Name, category.ID, category.Slug))
	return 0
}
