package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/domain"
)

type fakeTestimonialAPI struct {
	all      []domain.Testimonial
	pending  []domain.Testimonial
	approved []string
	updated  []domain.TestimonialInput
	err      error
}

func (f *fakeTestimonialAPI) GetTestimonial(ctx context.Context, id string) (*domain.Testimonial, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.all {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, &backend.APIError{Status: 404}
}

func (f *fakeTestimonialAPI) UpdateTestimonial(ctx context.Context, token, id string, in domain.TestimonialInput) (*domain.Testimonial, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = append(f.updated, in)
	return &domain.Testimonial{ID: id, Name: in.Name, Status: domain.StatusApproved}, nil
}

func (f *fakeTestimonialAPI) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return f.all, f.err
}

func (f *fakeTestimonialAPI) ListPendingTestimonials(ctx context.Context, token string) ([]domain.Testimonial, error) {
	return f.pending, f.err
}

func (f *fakeTestimonialAPI) SubmitTestimonial(ctx context.Context, token string, in domain.TestimonialInput, avatar *backend.Upload) (*domain.Testimonial, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Testimonial{ID: "t9", Name: in.Name, Status: domain.StatusPending}, nil
}

func (f *fakeTestimonialAPI) Approve(ctx context.Context, token, id string) (*domain.Testimonial, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.approved = append(f.approved, id)
	return &domain.Testimonial{ID: id, Status: domain.StatusApproved}, nil
}

func (f *fakeTestimonialAPI) Deny(ctx context.Context, token, id string) (*domain.Testimonial, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Testimonial{ID: id, Status: domain.StatusDenied}, nil
}

func (f *fakeTestimonialAPI) DeleteTestimonial(ctx context.Context, token, id string) error {
	return f.err
}

type countingCache struct{ n int }

func (c *countingCache) InvalidateTestimonials(ctx context.Context) { c.n++ }

func TestBoardSplitsByStatus(t *testing.T) {
	api := &fakeTestimonialAPI{
		// The backend may ignore the status filter.
		pending: []domain.Testimonial{
			{ID: "1", Status: domain.StatusPending},
			{ID: "2", Status: domain.StatusApproved},
		},
		all: []domain.Testimonial{
			{ID: "2", Status: domain.StatusApproved},
			{ID: "3", Status: domain.StatusDenied},
			{ID: "4"},
		},
	}
	svc := NewTestimonialService(api, &countingCache{})

	board, err := svc.Board(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, board.Pending, 1)
	assert.Equal(t, "1", board.Pending[0].ID)
	assert.Len(t, board.Approved, 2)
	require.Len(t, board.Denied, 1)
	assert.Equal(t, "3", board.Denied[0].ID)
}

func TestCreateWithPublishApproves(t *testing.T) {
	api := &fakeTestimonialAPI{}
	cache := &countingCache{}
	svc := NewTestimonialService(api, cache)

	got, err := svc.Create(context.Background(), "tok", domain.TestimonialInput{Name: "Ann"}, nil, true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
	assert.Equal(t, []string{"t9"}, api.approved)
	assert.Equal(t, 1, cache.n)

	got, err = svc.Create(context.Background(), "tok", domain.TestimonialInput{Name: "Bob"}, nil, false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Len(t, api.approved, 1)
}

func TestModerationInvalidatesCache(t *testing.T) {
	cache := &countingCache{}
	svc := NewTestimonialService(&fakeTestimonialAPI{}, cache)
	ctx := context.Background()

	require.NoError(t, svc.Approve(ctx, "tok", "1"))
	require.NoError(t, svc.Deny(ctx, "tok", "2"))
	require.NoError(t, svc.Delete(ctx, "tok", "3"))
	assert.Equal(t, 3, cache.n)
}

func TestUnauthorizedPassesThrough(t *testing.T) {
	api := &fakeTestimonialAPI{err: &backend.APIError{Status: 401, Message: "expired"}}
	cache := &countingCache{}
	svc := NewTestimonialService(api, cache)

	err := svc.Approve(context.Background(), "tok", "1")
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
	assert.Zero(t, cache.n)

	_, err = svc.PendingCount(context.Background(), "tok")
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
}

func TestUpdateKeepsStatusAndInvalidates(t *testing.T) {
	api := &fakeTestimonialAPI{all: []domain.Testimonial{{ID: "t1", Name: "Ann", Status: domain.StatusApproved}}}
	cache := &countingCache{}
	svc := NewTestimonialService(api, cache)

	got, err := svc.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, backend.ErrNotFound)

	_, err = svc.Update(context.Background(), "tok", "t1", domain.TestimonialInput{Name: "Ann Lee", Status: domain.StatusPending})
	require.NoError(t, err)
	require.Len(t, api.updated, 1)
	assert.Equal(t, "Ann Lee", api.updated[0].Name)
	assert.Empty(t, api.updated[0].Status)
	assert.Equal(t, 1, cache.n)

	api.err = &backend.APIError{Status: 500}
	_, err = svc.Update(context.Background(), "tok", "t1", domain.TestimonialInput{Name: "x"})
	assert.Error(t, err)
	assert.Equal(t, 1, cache.n)
}
