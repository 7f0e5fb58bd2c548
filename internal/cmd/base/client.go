package base

import (
	"fmt"

	"github.com/hashicorp-forge/discourse-client/internal/config"
	"github.com/hashicorp-forge/discourse-client/pkg/discourse"
)

// NewClient loads configuration from the optional config file path plus
// the environment and builds a Discourse client wired to the command's
// logger.
func (c *Command) NewClient(configPath string) (*discourse.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.Logger = c.Log

	client, err := discourse.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating client: %w", err)
	}
	return client, nil
}
