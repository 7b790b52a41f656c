package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dexsamir/portfolio/internal/domain"
)

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	if err := c.doJSON(ctx, "projects.list", http.MethodGet, c.resource("/projects"), nil, "", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Project{}
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var out domain.Project
	if err := c.doJSON(ctx, "projects.get", http.MethodGet, c.resource("/projects/"+url.PathEscape(id)), nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject posts JSON, or multipart/form-data when an image is attached.
func (c *Client) CreateProject(ctx context.Context, token string, in domain.ProjectInput, image *Upload) (*domain.Project, error) {
	var out domain.Project
	endpoint := c.resource("/projects")
	if image == nil {
		if err := c.doJSON(ctx, "projects.create", http.MethodPost, endpoint, in, token, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	body, ct, err := multipartBody(projectFields(in), "image", image)
	if err != nil {
		return nil, err
	}
	if err := c.do(ctx, "projects.create", http.MethodPost, endpoint, body, ct, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, token, id string, in domain.ProjectInput, image *Upload) (*domain.Project, error) {
	var out domain.Project
	endpoint := c.resource("/projects/" + url.PathEscape(id))
	if image == nil {
		if err := c.doJSON(ctx, "projects.update", http.MethodPatch, endpoint, in, token, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	body, ct, err := multipartBody(projectFields(in), "image", image)
	if err != nil {
		return nil, err
	}
	if err := c.do(ctx, "projects.update", http.MethodPatch, endpoint, body, ct, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, "projects.delete", http.MethodDelete, c.resource("/projects/"+url.PathEscape(id)), nil, token, nil)
}

func projectFields(in domain.ProjectInput) []formField {
	fields := []formField{
		{"title", in.Title},
		{"description", in.Description},
	}
	for _, t := range in.Technologies {
		fields = append(fields, formField{"technologies", t})
	}
	if in.GithubURL != "" {
		fields = append(fields, formField{"githubUrl", in.GithubURL})
	}
	if in.LiveURL != "" {
		fields = append(fields, formField{"liveUrl", in.LiveURL})
	}
	return fields
}
