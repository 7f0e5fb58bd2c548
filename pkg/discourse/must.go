package discourse

import "context"

// The Must* variants wrap their result-returning counterparts and panic on
// failure, for callers that prefer fail-fast propagation (initialization
// code, scripts, tests). They add no logic of their own.

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// MustLookupUserID is LookupUserID, panicking on error.
func (c *Client) MustLookupUserID(ctx context.Context, username string) *UserIDLookup {
	return must(c.LookupUserID(ctx, username))
}

// MustLookupUser is LookupUser, panicking on error.
func (c *Client) MustLookupUser(ctx context.Context, username string) *UserLookup {
	return must(c.LookupUser(ctx, username))
}

// MustCreateUser is CreateUser, panicking on error.
func (c *Client) MustCreateUser(ctx context.Context, name, email, password string) *UserCreated {
	return must(c.CreateUser(ctx, name, email, password))
}

// MustDeactivateUser is DeactivateUser, panicking on error.
func (c *Client) MustDeactivateUser(ctx context.Context, username string) string {
	return must(c.DeactivateUser(ctx, username))
}

// MustReactivateUser is ReactivateUser, panicking on error.
func (c *Client) MustReactivateUser(ctx context.Context, username string) string {
	return must(c.ReactivateUser(ctx, username))
}

// MustGenerateUserAPIKey is GenerateUserAPIKey, panicking on error.
func (c *Client) MustGenerateUserAPIKey(ctx context.Context, userID int64) string {
	return must(c.GenerateUserAPIKey(ctx, userID))
}

// MustRevokeUserAPIKey is RevokeUserAPIKey, panicking on error.
func (c *Client) MustRevokeUserAPIKey(ctx context.Context, userID int64) string {
	return must(c.RevokeUserAPIKey(ctx, userID))
}

// MustCreateCommunityTopic is CreateCommunityTopic, panicking on error.
func (c *Client) MustCreateCommunityTopic(ctx context.Context, name, color string) *Category {
	return must(c.CreateCommunityTopic(ctx, name, color))
}

// MustCreateCategory is CreateCategory, panicking on error.
func (c *Client) MustCreateCategory(ctx context.Context, name, color string, parentCategoryID int64, description, icon string) *Category {
	return must(c.CreateCategory(ctx, name, color, parentCategoryID, description, icon))
}
