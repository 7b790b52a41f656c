package service

import (
	"context"

	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/domain"
)

// TestimonialAPI is the part of the backend client used for moderation.
type TestimonialAPI interface {
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	ListPendingTestimonials(ctx context.Context, token string) ([]domain.Testimonial, error)
	GetTestimonial(ctx context.Context, id string) (*domain.Testimonial, error)
	SubmitTestimonial(ctx context.Context, token string, in domain.TestimonialInput, avatar *backend.Upload) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, token, id string, in domain.TestimonialInput) (*domain.Testimonial, error)
	Approve(ctx context.Context, token, id string) (*domain.Testimonial, error)
	Deny(ctx context.Context, token, id string) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, token, id string) error
}

// Invalidator drops the cached public testimonial list.
type Invalidator interface {
	InvalidateTestimonials(ctx context.Context)
}

// Board is everything the moderation page shows.
type Board struct {
	Pending  []domain.Testimonial
	Approved []domain.Testimonial
	Denied   []domain.Testimonial
}

type TestimonialService struct {
	api   TestimonialAPI
	cache Invalidator
}

func NewTestimonialService(api TestimonialAPI, cache Invalidator) *TestimonialService {
	return &TestimonialService{api: api, cache: cache}
}

// Board loads the moderation queue and the published list. The pending list
// only ever holds pending testimonials.
func (s *TestimonialService) Board(ctx context.Context, token string) (*Board, error) {
	pending, err := s.api.ListPendingTestimonials(ctx, token)
	if err != nil {
		return nil, err
	}
	all, err := s.api.ListTestimonials(ctx)
	if err != nil {
		return nil, err
	}
	return &Board{
		Pending:  domain.FilterByStatus(pending, domain.StatusPending),
		Approved: domain.PublicTestimonials(all),
		Denied:   domain.FilterByStatus(all, domain.StatusDenied),
	}, nil
}

// PendingCount is the size of the moderation queue.
func (s *TestimonialService) PendingCount(ctx context.Context, token string) (int, error) {
	pending, err := s.api.ListPendingTestimonials(ctx, token)
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}

// Create adds a testimonial on behalf of a visitor. publish approves it
// right away.
func (s *TestimonialService) Create(ctx context.Context, token string, in domain.TestimonialInput, avatar *backend.Upload, publish bool) (*domain.Testimonial, error) {
	t, err := s.api.SubmitTestimonial(ctx, token, in, avatar)
	if err != nil {
		return nil, err
	}
	if publish && t.ID != "" {
		if t, err = s.api.Approve(ctx, token, t.ID); err != nil {
			return nil, err
		}
	}
	s.cache.InvalidateTestimonials(ctx)
	return t, nil
}

func (s *TestimonialService) Get(ctx context.Context, id string) (*domain.Testimonial, error) {
	return s.api.GetTestimonial(ctx, id)
}

// Update rewrites the content fields. The moderation status is left alone.
func (s *TestimonialService) Update(ctx context.Context, token, id string, in domain.TestimonialInput) (*domain.Testimonial, error) {
	in.Status = ""
	t, err := s.api.UpdateTestimonial(ctx, token, id, in)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateTestimonials(ctx)
	return t, nil
}

func (s *TestimonialService) Approve(ctx context.Context, token, id string) error {
	if _, err := s.api.Approve(ctx, token, id); err != nil {
		return err
	}
	s.cache.InvalidateTestimonials(ctx)
	return nil
}

func (s *TestimonialService) Deny(ctx context.Context, token, id string) error {
	if _, err := s.api.Deny(ctx, token, id); err != nil {
		return err
	}
	s.cache.InvalidateTestimonials(ctx)
	return nil
}

func (s *TestimonialService) Delete(ctx context.Context, token, id string) error {
	if err := s.api.DeleteTestimonial(ctx, token, id); err != nil {
		return err
	}
	s.cache.InvalidateTestimonials(ctx)
	return nil
}
