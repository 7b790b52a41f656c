package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dexsamir/portfolio/internal/domain"
)

// ListTechnologies returns every tag, soft-deleted ones included.
func (c *Client) ListTechnologies(ctx context.Context) ([]domain.Technology, error) {
	var out []domain.Technology
	if err := c.doJSON(ctx, "technologies.list", http.MethodGet, c.resource("/technologies"), nil, "", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Technology{}
	}
	return out, nil
}

func (c *Client) CreateTechnology(ctx context.Context, token, name string) (*domain.Technology, error) {
	var out domain.Technology
	body := map[string]string{"name": name}
	if err := c.doJSON(ctx, "technologies.create", http.MethodPost, c.resource("/technologies"), body, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RenameTechnology(ctx context.Context, token, id, name string) (*domain.Technology, error) {
	var out domain.Technology
	body := map[string]string{"name": name}
	if err := c.doJSON(ctx, "technologies.update", http.MethodPatch, c.resource("/technologies/"+url.PathEscape(id)), body, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTechnology asks the backend to soft-delete the tag.
func (c *Client) DeleteTechnology(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, "technologies.delete", http.MethodDelete, c.resource("/technologies/"+url.PathEscape(id)), nil, token, nil)
}
