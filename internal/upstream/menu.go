package upstream

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

// ListMenu fetches the catalog for an audience ("customer" or "employee" —
// the employee view carries in-house prices).
func (c *Client) ListMenu(ctx context.Context, audience string) ([]model.MenuItem, error) {
	q := url.Values{}
	if audience != "" {
		q.Set("audience", audience)
	}
	var items []model.MenuItem
	if err := c.get(ctx, "/menu", "", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetMenuItem fetches a single catalog entry.
func (c *Client) GetMenuItem(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := c.get(ctx, "/menu/"+id.String(), "", nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListCategories returns the distinct category names.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := c.get(ctx, "/menu/categories", "", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// AdminListMenu returns the admin view, optionally filtered by item type.
func (c *Client) AdminListMenu(ctx context.Context, token, itemType string) ([]model.MenuItem, error) {
	q := url.Values{}
	if itemType != "" {
		q.Set("type", itemType)
	}
	var items []model.MenuItem
	if err := c.get(ctx, "/admin/menu", token, q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateMenuItem adds a catalog entry (admin).
func (c *Client) CreateMenuItem(ctx context.Context, token string, item model.MenuItem) (*model.MenuItem, error) {
	var out model.MenuItem
	if err := c.post(ctx, "/admin/menu", token, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMenuItem replaces a catalog entry (admin).
func (c *Client) UpdateMenuItem(ctx context.Context, token string, item model.MenuItem) (*model.MenuItem, error) {
	var out model.MenuItem
	if err := c.put(ctx, "/admin/menu/"+item.ID.String(), token, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMenuItem removes a catalog entry (admin).
func (c *Client) DeleteMenuItem(ctx context.Context, token string, id uuid.UUID) error {
	return c.delete(ctx, "/admin/menu/"+id.String(), token)
}
