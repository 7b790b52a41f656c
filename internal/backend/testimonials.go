package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dexsamir/portfolio/internal/domain"
)

func (c *Client) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var out []domain.Testimonial
	if err := c.doJSON(ctx, "testimonials.list", http.MethodGet, c.resource("/testimonials"), nil, "", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Testimonial{}
	}
	return out, nil
}

// ListPendingTestimonials returns the moderation queue. The result is
// filtered locally as well, so only pending records ever reach the caller.
func (c *Client) ListPendingTestimonials(ctx context.Context, token string) ([]domain.Testimonial, error) {
	var out []domain.Testimonial
	endpoint := c.resource("/testimonials") + "?status=" + string(domain.StatusPending)
	if err := c.doJSON(ctx, "testimonials.pending", http.MethodGet, endpoint, nil, token, &out); err != nil {
		return nil, err
	}
	return domain.FilterByStatus(out, domain.StatusPending), nil
}

func (c *Client) GetTestimonial(ctx context.Context, id string) (*domain.Testimonial, error) {
	var out domain.Testimonial
	if err := c.doJSON(ctx, "testimonials.get", http.MethodGet, c.resource("/testimonials/"+url.PathEscape(id)), nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitTestimonial creates a testimonial in the pending state. token may be
// empty for public submissions.
func (c *Client) SubmitTestimonial(ctx context.Context, token string, in domain.TestimonialInput, avatar *Upload) (*domain.Testimonial, error) {
	in.Status = domain.StatusPending
	var out domain.Testimonial
	endpoint := c.resource("/testimonials")
	if avatar == nil {
		if err := c.doJSON(ctx, "testimonials.create", http.MethodPost, endpoint, in, token, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	body, ct, err := multipartBody(testimonialFields(in), "avatar", avatar)
	if err != nil {
		return nil, err
	}
	if err := c.do(ctx, "testimonials.create", http.MethodPost, endpoint, body, ct, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTestimonial(ctx context.Context, token, id string, in domain.TestimonialInput) (*domain.Testimonial, error) {
	var out domain.Testimonial
	if err := c.doJSON(ctx, "testimonials.update", http.MethodPatch, c.resource("/testimonials/"+url.PathEscape(id)), in, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Approve moves a testimonial to approved.
func (c *Client) Approve(ctx context.Context, token, id string) (*domain.Testimonial, error) {
	return c.moderate(ctx, "testimonials.approve", token, id, "approve")
}

// Deny moves a testimonial to denied.
func (c *Client) Deny(ctx context.Context, token, id string) (*domain.Testimonial, error) {
	return c.moderate(ctx, "testimonials.deny", token, id, "deny")
}

func (c *Client) moderate(ctx context.Context, op, token, id, action string) (*domain.Testimonial, error) {
	var out domain.Testimonial
	endpoint := c.resource("/testimonials/" + url.PathEscape(id) + "/" + action)
	if err := c.doJSON(ctx, op, http.MethodPatch, endpoint, nil, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTestimonial(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, "testimonials.delete", http.MethodDelete, c.resource("/testimonials/"+url.PathEscape(id)), nil, token, nil)
}

func testimonialFields(in domain.TestimonialInput) []formField {
	return []formField{
		{"name", in.Name},
		{"position", in.Position},
		{"company", in.Company},
		{"content", in.Content},
		{"rating", itoa(in.Rating)},
		{"status", string(in.Status)},
	}
}
