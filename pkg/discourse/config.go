package discourse

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-hclog"
)

// Config contains configuration for the Discourse admin API client.
//
// The endpoint plus admin credentials are read once at startup and treated
// as immutable for the lifetime of the client. Unauthenticated lookups only
// need the endpoint; every privileged operation additionally requires the
// admin username and API key.
//
// Example configuration (HCL):
//
//	discourse {
//	  endpoint = "https://forum.example.com"
//	  username = "system"
//	  api_key  = env("DISCOURSE_API_KEY")
//	  timeout  = "30s"
//	}
type Config struct {
	// Endpoint is the base URL of the Discourse instance, without a
	// trailing slash. Example: "https://forum.example.com"
	Endpoint string `hcl:"endpoint" json:"endpoint"`

	// Username is the admin account used for privileged API calls.
	Username string `hcl:"username,optional" json:"username,omitempty"`

	// APIKey is the admin API key paired with Username.
	// Should be kept in an environment variable for security.
	APIKey string `hcl:"api_key,optional" json:"-"` // Don't marshal the key to JSON

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool `hcl:"tls_verify,optional" json:"tlsVerify,omitempty"`

	// Timeout for API requests.
	// Default: 30 seconds
	Timeout time.Duration `hcl:"timeout,optional" json:"timeout,omitempty"`

	// Logger receives per-request debug logging (optional).
	Logger hclog.Logger `hcl:"-" json:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		TLSVerify: &tlsVerify,
		Timeout:   30 * time.Second,
	}
}

// Validate checks if the configuration is valid.
//
// Credentials are deliberately not required here: read-only lookups work
// without them. Privileged operations check credentials at call time.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Endpoint, validation.Required, is.URL),
	); err != nil {
		return err
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got: %v", c.Timeout)
	}

	return nil
}

// validateCredentials checks the admin username/API key pair required by
// privileged operations.
func (c *Config) validateCredentials() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.APIKey, validation.Required),
	)
}

// NewHTTPClient creates a configured HTTP client for this config.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
