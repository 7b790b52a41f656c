package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexsamir/portfolio/internal/domain"
)

type fakeSource struct {
	projects     []domain.Project
	testimonials []domain.Testimonial
	err          error
	projectCalls int
	testCalls    int
}

func (f *fakeSource) ListProjects(ctx context.Context) ([]domain.Project, error) {
	f.projectCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.projects, nil
}

func (f *fakeSource) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	f.testCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.testimonials, nil
}

func setup(t *testing.T, src Source) (*Snapshots, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSnapshots(client, src, time.Minute, logger), mr
}

func TestProjectsReadThrough(t *testing.T) {
	src := &fakeSource{projects: []domain.Project{{ID: "p1", Title: "One"}}}
	snaps, mr := setup(t, src)
	ctx := context.Background()

	got, err := snaps.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, mr.Exists(ProjectsKey))

	got, err = snaps.Projects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "One", got[0].Title)
	assert.Equal(t, 1, src.projectCalls)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	src := &fakeSource{projects: []domain.Project{{ID: "p1"}}}
	snaps, _ := setup(t, src)
	ctx := context.Background()

	_, err := snaps.Projects(ctx)
	require.NoError(t, err)

	src.projects = append(src.projects, domain.Project{ID: "p2"})
	snaps.InvalidateProjects(ctx)

	got, err := snaps.Projects(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, src.projectCalls)
}

func TestStaleFallbackOnBackendFailure(t *testing.T) {
	src := &fakeSource{testimonials: []domain.Testimonial{{ID: "t1", Status: domain.StatusApproved}}}
	snaps, _ := setup(t, src)
	ctx := context.Background()

	_, err := snaps.Testimonials(ctx)
	require.NoError(t, err)

	snaps.now = func() time.Time { return time.Now().Add(time.Hour) }
	src.err = errors.New("backend down")

	got, err := snaps.Testimonials(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, 2, src.testCalls)
}

func TestFailureWithoutCacheReturnsEmpty(t *testing.T) {
	src := &fakeSource{err: errors.New("backend down")}
	snaps, mr := setup(t, src)

	got, err := snaps.Projects(context.Background())
	assert.Error(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.False(t, mr.Exists(ProjectsKey))
}

func TestRefresh(t *testing.T) {
	src := &fakeSource{
		projects:     []domain.Project{{ID: "p1"}},
		testimonials: []domain.Testimonial{{ID: "t1"}},
	}
	snaps, mr := setup(t, src)

	require.NoError(t, snaps.Refresh(context.Background()))
	assert.True(t, mr.Exists(ProjectsKey))
	assert.True(t, mr.Exists(TestimonialsKey))

	src.err = errors.New("boom")
	assert.Error(t, snaps.Refresh(context.Background()))
}

func TestRefresherDisabled(t *testing.T) {
	snaps, _ := setup(t, &fakeSource{})
	r := NewRefresher(snaps, 0, nil)
	require.NoError(t, r.Start())
	r.Stop()
}
