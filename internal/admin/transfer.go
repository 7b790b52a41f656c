package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/domain"
)

// ImportResult summarises an import run.
type ImportResult struct {
	Applied      bool
	Projects     int
	Testimonials int
	Pending      int
	Failed       int
}

// Export collects the current backend state into a snapshot. Pending
// testimonials need the admin token, so they are fetched separately and
// merged with the public list.
func Export(ctx context.Context, api *backend.Client, token string) (domain.Snapshot, error) {
	projects, err := api.ListProjects(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("export projects: %w", err)
	}
	all, err := api.ListTestimonials(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("export testimonials: %w", err)
	}
	pending, err := api.ListPendingTestimonials(ctx, token)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("export pending testimonials: %w", err)
	}
	return domain.NewSnapshot(projects, mergeTestimonials(all, pending)), nil
}

// Import writes every record of snap through the backend. Without apply it
// only reports what would be written. Unauthorized errors abort the run.
func Import(ctx context.Context, api *backend.Client, token string, snap *domain.Snapshot, apply bool, logger *slog.Logger) (ImportResult, error) {
	res := ImportResult{
		Applied:      apply,
		Projects:     len(snap.Projects),
		Testimonials: len(snap.Testimonials),
		Pending:      len(snap.PendingTestimonials),
	}
	if !apply {
		return res, nil
	}

	for _, p := range snap.Projects {
		if _, err := api.CreateProject(ctx, token, p.Input(), nil); err != nil {
			if isAuthError(err) {
				return res, err
			}
			logger.WarnContext(ctx, "import project failed", "title", p.Title, "error", err)
			res.Failed++
		}
	}

	// Submissions always start pending; the stored status is replayed after.
	publish := func(t domain.Testimonial, status domain.Status) error {
		created, err := api.SubmitTestimonial(ctx, token, testimonialInput(t), nil)
		if err != nil || created.ID == "" {
			return err
		}
		switch status {
		case domain.StatusApproved:
			_, err = api.Approve(ctx, token, created.ID)
		case domain.StatusDenied:
			_, err = api.Deny(ctx, token, created.ID)
		}
		return err
	}
	for _, t := range snap.Testimonials {
		status := t.Status
		if status != domain.StatusDenied {
			status = domain.StatusApproved
		}
		if err := publish(t, status); err != nil {
			if isAuthError(err) {
				return res, err
			}
			logger.WarnContext(ctx, "import testimonial failed", "name", t.Name, "error", err)
			res.Failed++
		}
	}
	for _, t := range snap.PendingTestimonials {
		if err := publish(t, domain.StatusPending); err != nil {
			if isAuthError(err) {
				return res, err
			}
			logger.WarnContext(ctx, "import pending testimonial failed", "name", t.Name, "error", err)
			res.Failed++
		}
	}
	return res, nil
}

func testimonialInput(t domain.Testimonial) domain.TestimonialInput {
	rating := t.Rating
	if rating < domain.MinRating || rating > domain.MaxRating {
		rating = domain.MaxRating
	}
	return domain.TestimonialInput{
		Name:     t.Name,
		Position: t.Position,
		Company:  t.Company,
		Avatar:   t.Avatar,
		Content:  t.Content,
		Rating:   rating,
	}
}

func mergeTestimonials(all, pending []domain.Testimonial) []domain.Testimonial {
	out := make([]domain.Testimonial, 0, len(all)+len(pending))
	seen := make(map[string]struct{}, len(all))
	for _, t := range all {
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	for _, t := range pending {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

func isAuthError(err error) bool {
	return errors.Is(err, backend.ErrUnauthorized)
}
