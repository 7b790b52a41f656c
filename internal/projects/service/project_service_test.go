package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/domain"
)

type fakeProjectAPI struct {
	projects []domain.Project
	techs    []domain.Technology
	err      error
	calls    []string
}

func (f *fakeProjectAPI) ListProjects(ctx context.Context) ([]domain.Project, error) {
	f.calls = append(f.calls, "list")
	return f.projects, f.err
}

func (f *fakeProjectAPI) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	f.calls = append(f.calls, "get")
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Project{ID: id}, nil
}

func (f *fakeProjectAPI) CreateProject(ctx context.Context, token string, in domain.ProjectInput, image *backend.Upload) (*domain.Project, error) {
	f.calls = append(f.calls, "create:"+token)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Project{ID: "new", Title: in.Title}, nil
}

func (f *fakeProjectAPI) UpdateProject(ctx context.Context, token, id string, in domain.ProjectInput, image *backend.Upload) (*domain.Project, error) {
	f.calls = append(f.calls, "update:"+id)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Project{ID: id, Title: in.Title}, nil
}

func (f *fakeProjectAPI) DeleteProject(ctx context.Context, token, id string) error {
	f.calls = append(f.calls, "delete:"+id)
	return f.err
}

func (f *fakeProjectAPI) ListTechnologies(ctx context.Context) ([]domain.Technology, error) {
	return f.techs, f.err
}

type countingCache struct{ n int }

func (c *countingCache) InvalidateProjects(ctx context.Context) { c.n++ }

func TestWritesInvalidateCache(t *testing.T) {
	api := &fakeProjectAPI{}
	cache := &countingCache{}
	svc := NewProjectService(api, cache)
	ctx := context.Background()

	p, err := svc.Create(ctx, "tok", domain.ProjectInput{Title: "A"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "A", p.Title)

	_, err = svc.Update(ctx, "tok", "p1", domain.ProjectInput{Title: "B"}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "tok", "p1"))

	assert.Equal(t, 3, cache.n)
	assert.Equal(t, []string{"create:tok", "update:p1", "delete:p1"}, api.calls)
}

func TestFailedWriteKeepsCache(t *testing.T) {
	api := &fakeProjectAPI{err: errors.New("boom")}
	cache := &countingCache{}
	svc := NewProjectService(api, cache)

	_, err := svc.Create(context.Background(), "tok", domain.ProjectInput{Title: "A"}, nil)
	assert.Error(t, err)
	assert.Error(t, svc.Delete(context.Background(), "tok", "p1"))
	assert.Zero(t, cache.n)
}

func TestTechnologyOptions(t *testing.T) {
	api := &fakeProjectAPI{techs: []domain.Technology{{Name: "Go"}, {Name: "Perl", IsDeleted: true}}}
	svc := NewProjectService(api, &countingCache{})

	opts := svc.TechnologyOptions(context.Background())
	require.Len(t, opts, 1)
	assert.Equal(t, "Go", opts[0].Name)

	api.err = errors.New("down")
	assert.Nil(t, svc.TechnologyOptions(context.Background()))
}
