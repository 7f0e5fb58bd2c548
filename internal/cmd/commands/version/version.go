package version

import (
	"github.com/hashicorp-forge/discourse-client/internal/cmd/base"
	buildversion "github.com/hashicorp-forge/discourse-client/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return `Usage: discourse-admin version`
}

func (c *Command) Run(args []string) int {
	c.UI.Info(buildversion.Version)
	return 0
}
