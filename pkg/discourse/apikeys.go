package discourse

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// RevokedMessage is the fixed confirmation returned by RevokeUserAPIKey.
const RevokedMessage = "API key successfully revoked"

// GenerateUserAPIKey creates (or rotates) the per-user API key for the
// given user ID and returns the key string.
//
// HTTP 500 is surfaced as ErrInternalServer; transport failures as
// *RequestError.
func (c *Client) GenerateUserAPIKey(ctx context.Context, userID int64) (string, error) {
	if err := c.requireCredentials(); err != nil {
		return "", err
	}

	path := fmt.Sprintf("/admin/users/%d/generate_api_key", userID)
	form := c.authForm(url.Values{})

	resp, err := c.do(ctx, "generate user api key", http.MethodPost, path, nil, form)
	if err != nil {
		return "", err
	}

	if resp.status == http.StatusInternalServerError {
		return "", ErrInternalServer
	}
	if resp.status != http.StatusOK {
		return "", fmt.Errorf("api key generation returned status %d", resp.status)
	}

	// The key arrives either nested ({"api_key":{"key":"..."}}) or as a
	// bare string, depending on the server version.
	switch v := resp.body.get("api_key").(type) {
	case string:
		return v, nil
	case map[string]any:
		var key struct {
			ID  int64  `json:"id"`
			Key string `json:"key"`
		}
		if err := resp.body.decode("api_key", &key); err != nil {
			return "", err
		}
		if key.Key == "" {
			return "", fmt.Errorf("api key missing from response")
		}
		return key.Key, nil
	default:
		return "", fmt.Errorf("api key missing from response")
	}
}

// RevokeUserAPIKey revokes the per-user API key for the given user ID and
// returns RevokedMessage on success.
func (c *Client) RevokeUserAPIKey(ctx context.Context, userID int64) (string, error) {
	if err := c.requireCredentials(); err != nil {
		return "", err
	}

	path := "/admin/users/" + strconv.FormatInt(userID, 10) + "/revoke_api_key"
	form := c.authForm(url.Values{})

	resp, err := c.do(ctx, "revoke user api key", http.MethodDelete, path, nil, form)
	if err != nil {
		return "", err
	}

	if resp.status == http.StatusInternalServerError {
		return "", ErrInternalServer
	}
	if resp.status != http.StatusOK {
		return "", fmt.Errorf("api key revocation returned status %d", resp.status)
	}

	return RevokedMessage, nil
}
