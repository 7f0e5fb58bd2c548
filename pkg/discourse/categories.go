package discourse

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// defaultTextColor is the category text color the API expects when the
// caller has no opinion.
const defaultTextColor = "FFFFFF"

// Category is a Discourse category as returned by the creation endpoint.
type Category struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Color            string `json:"color"`
	TextColor        string `json:"text_color"`
	Description      string `json:"description"`
	ParentCategoryID int64  `json:"parent_category_id"`
}

// CreateCommunityTopic creates a top-level community category with the
// given name and color, using defaults for everything else.
func (c *Client) CreateCommunityTopic(ctx context.Context, name, color string) (*Category, error) {
	return c.createCategory(ctx, "create community topic", name, color, 0, "", "")
}

// CreateCategory creates a category. parentCategoryID of 0 means a
// top-level category; description and icon may be empty.
func (c *Client) CreateCategory(ctx context.Context, name, color string, parentCategoryID int64, description, icon string) (*Category, error) {
	return c.createCategory(ctx, "create category", name, color, parentCategoryID, description, icon)
}

func (c *Client) createCategory(ctx context.Context, op, name, color string, parentCategoryID int64, description, icon string) (*Category, error) {
	if err := c.requireCredentials(); err != nil {
		return nil, err
	}

	form := c.authForm(url.Values{})
	form.Set("name", name)
	form.Set("color", color)
	form.Set("text_color", defaultTextColor)
	form.Set("description", description)
	if parentCategoryID > 0 {
		form.Set("parent_category_id", strconv.FormatInt(parentCategoryID, 10))
	}
	if icon != "" {
		form.Set("icon", icon)
	}

	resp, err := c.do(ctx, op, http.MethodPost, "/categories", nil, form)
	if err != nil {
		return nil, err
	}

	if resp.status == http.StatusInternalServerError {
		return nil, ErrInternalServer
	}
	if resp.status != http.StatusOK {
		return nil, fmt.Errorf("category creation returned status %d", resp.status)
	}

	var category Category
	if err := resp.body.decode("category", &category); err != nil {
		return nil, err
	}
	return &category, nil
}
