package discourse

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// NotFoundMessage is the sentinel carried by a successful lookup or
// activation result when the server answered 404 for the username.
const NotFoundMessage = "User not found"

// User is a Discourse user as returned by the lookup endpoint.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	AvatarTemplate string `json:"avatar_template"`
	Active         bool   `json:"active"`
	Admin          bool   `json:"admin"`
	Moderator      bool   `json:"moderator"`
	TrustLevel     int    `json:"trust_level"`
	LastSeenAt     string `json:"last_seen_at"`
}

// UserBadge is a badge grant attached to a user lookup response.
type UserBadge struct {
	ID        int64  `json:"id"`
	BadgeID   int64  `json:"badge_id"`
	UserID    int64  `json:"user_id"`
	GrantedAt string `json:"granted_at"`
}

// UserIDLookup is the outcome of LookupUserID. A 404 from the server is a
// successful lookup with Found=false, not an error.
type UserIDLookup struct {
	UserID  int64
	Found   bool
	Message string // NotFoundMessage when Found is false
}

// UserLookup is the outcome of LookupUser.
type UserLookup struct {
	User       *User
	UserBadges []UserBadge
	Found      bool
	Message    string // NotFoundMessage when Found is false
}

// UserCreated is the server's acknowledgement of a successful CreateUser.
type UserCreated struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// LookupUserID returns the numeric user ID for a username.
//
// A 404 yields a successful result with Found=false and Message set to
// NotFoundMessage; callers must inspect the value. Transport failures are
// returned as *RequestError.
func (c *Client) LookupUserID(ctx context.Context, username string) (*UserIDLookup, error) {
	lookup, err := c.LookupUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if !lookup.Found {
		return &UserIDLookup{Message: lookup.Message}, nil
	}
	return &UserIDLookup{UserID: lookup.User.ID, Found: true}, nil
}

// LookupUser fetches a user record by username. See LookupUserID for the
// not-found convention.
func (c *Client) LookupUser(ctx context.Context, username string) (*UserLookup, error) {
	path := fmt.Sprintf("/users/%s.json", url.PathEscape(username))

	query := url.Values{}
	if c.config.Username != "" && c.config.APIKey != "" {
		query = c.authQuery()
	}

	resp, err := c.do(ctx, "lookup user", http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	if resp.status == http.StatusNotFound {
		return &UserLookup{Message: NotFoundMessage}, nil
	}
	if resp.status != http.StatusOK {
		return nil, fmt.Errorf("user lookup returned status %d", resp.status)
	}

	var user User
	if err := resp.body.decode("user", &user); err != nil {
		return nil, err
	}

	lookup := &UserLookup{User: &user, Found: true}
	if resp.body.get("user_badges") != nil {
		// Badges are optional; a malformed badge list doesn't fail the lookup.
		_ = resp.body.decode("user_badges", &lookup.UserBadges)
	}
	return lookup, nil
}

// CreateUser registers a new active user. The single name is used for both
// the display name and the username, matching the wire format's pair of
// fields.
//
// The server signals validation failures with HTTP 200 and a populated
// errors payload; these come back as *ValidationError.
func (c *Client) CreateUser(ctx context.Context, name, email, password string) (*UserCreated, error) {
	if err := c.requireCredentials(); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("name", name)
	form.Set("username", name)
	form.Set("email", email)
	form.Set("password", password)
	form.Set("active", "true")

	resp, err := c.do(ctx, "create user", http.MethodPost, "/users", c.authQuery(), form)
	if err != nil {
		return nil, err
	}

	if fields := resp.body.fieldErrors(); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if resp.status != http.StatusOK {
		return nil, fmt.Errorf("user creation returned status %d", resp.status)
	}

	var created UserCreated
	if err := resp.body.decodeAll(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeactivateUser marks a user inactive and returns the server's status
// string, or NotFoundMessage when the user does not exist.
func (c *Client) DeactivateUser(ctx context.Context, username string) (string, error) {
	return c.setUserActive(ctx, username, false)
}

// ReactivateUser marks a user active again. See DeactivateUser.
func (c *Client) ReactivateUser(ctx context.Context, username string) (string, error) {
	return c.setUserActive(ctx, username, true)
}

func (c *Client) setUserActive(ctx context.Context, username string, active bool) (string, error) {
	if err := c.requireCredentials(); err != nil {
		return "", err
	}

	op := "deactivate user"
	if active {
		op = "reactivate user"
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("active", fmt.Sprintf("%t", active))

	path := "/users/" + url.PathEscape(username)
	resp, err := c.do(ctx, op, http.MethodPut, path, c.authQuery(), form)
	if err != nil {
		return "", err
	}

	if resp.status == http.StatusNotFound {
		return NotFoundMessage, nil
	}
	if resp.status != http.StatusOK {
		return "", fmt.Errorf("%s returned status %d", op, resp.status)
	}

	// The success response is either {"success":"OK"} or a plain body.
	if status := resp.body.str("success"); status != "" {
		return status, nil
	}
	return resp.body.raw, nil
}
