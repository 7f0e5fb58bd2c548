// Package config loads client configuration for the discourse-admin CLI.
//
// Configuration comes from an optional HCL file plus environment
// variables; the environment wins. Values are read once at startup and the
// resulting discourse.Config is immutable for the process lifetime.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/discourse-client/pkg/discourse"
)

// File is the on-disk HCL configuration.
//
//	discourse {
//	  endpoint = "https://forum.example.com"
//	  username = "system"
//	  api_key  = "..."
//	  timeout  = "30s"
//	}
type File struct {
	Discourse *Block `hcl:"discourse,block"`
}

// Block is the discourse configuration block.
type Block struct {
	Endpoint  string `hcl:"endpoint,optional"`
	Username  string `hcl:"username,optional"`
	APIKey    string `hcl:"api_key,optional"`
	Timeout   string `hcl:"timeout,optional"`
	TLSVerify *bool  `hcl:"tls_verify,optional"`
}

// Env mirrors the configuration surface as environment variables.
type Env struct {
	Endpoint string        `env:"DISCOURSE_ENDPOINT"`
	Username string        `env:"DISCOURSE_USERNAME"`
	APIKey   string        `env:"DISCOURSE_API_KEY"`
	Timeout  time.Duration `env:"DISCOURSE_TIMEOUT"`
}

// Load builds a validated discourse.Config from the given HCL file (path
// may be empty) with environment-variable overrides.
func Load(path string) (*discourse.Config, error) {
	return load(afero.NewOsFs(), envconfig.OsLookuper(), path)
}

func load(fs afero.Fs, lookuper envconfig.Lookuper, path string) (*discourse.Config, error) {
	cfg := discourse.DefaultConfig()

	if path != "" {
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		var file File
		if err := hclsimple.Decode(path, src, nil, &file); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}

		if file.Discourse != nil {
			block := file.Discourse
			cfg.Endpoint = block.Endpoint
			cfg.Username = block.Username
			cfg.APIKey = block.APIKey
			if block.TLSVerify != nil {
				cfg.TLSVerify = block.TLSVerify
			}
			if block.Timeout != "" {
				timeout, err := time.ParseDuration(block.Timeout)
				if err != nil {
					return nil, fmt.Errorf("invalid timeout in config file: %w", err)
				}
				cfg.Timeout = timeout
			}
		}
	}

	var env Env
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &env,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	if env.Endpoint != "" {
		cfg.Endpoint = env.Endpoint
	}
	if env.Username != "" {
		cfg.Username = env.Username
	}
	if env.APIKey != "" {
		cfg.APIKey = env.APIKey
	}
	if env.Timeout != 0 {
		cfg.Timeout = env.Timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
