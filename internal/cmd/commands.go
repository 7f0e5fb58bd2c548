package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/discourse-client/internal/cmd/base"
	"github.com/hashicorp-forge/discourse-client/internal/cmd/commands/apikey"
	"github.com/hashicorp-forge/discourse-client/internal/cmd/commands/category"
	"github.com/hashicorp-forge/discourse-client/internal/cmd/commands/user"
	versioncmd "github.com/hashicorp-forge/discourse-client/internal/cmd/commands/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		Log: log,
		UI:  ui,
	}

	Commands = map[string]cli.CommandFactory{
		"user": func() (cli.Command, error) {
			return &user.Command{Command: baseCommand}, nil
		},
		"user lookup": func() (cli.Command, error) {
			return &user.LookupCommand{Command: baseCommand}, nil
		},
		"user create": func() (cli.Command, error) {
			return &user.CreateCommand{Command: baseCommand}, nil
		},
		"user activate": func() (cli.Command, error) {
			return &user.ActivateCommand{Command: baseCommand, Active: true}, nil
		},
		"user deactivate": func() (cli.Command, error) {
			return &user.ActivateCommand{Command: baseCommand, Active: false}, nil
		},
		"apikey": func() (cli.Command, error) {
			return &apikey.Command{Command: baseCommand}, nil
		},
		"apikey generate": func() (cli.Command, error) {
			return &apikey.GenerateCommand{Command: baseCommand}, nil
		},
		"apikey revoke": func() (cli.Command, error) {
			return &apikey.RevokeCommand{Command: baseCommand}, nil
		},
		"category": func() (cli.Command, error) {
			return &category.Command{Command: baseCommand}, nil
		},
		"category create": func() (cli.Command, error) {
			return &category.CreateCommand{Command: baseCommand}, nil
		},
		"category create-topic": func() (cli.Command, error) {
			return &category.CreateTopicCommand{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: baseCommand}, nil
		},
	}
}
