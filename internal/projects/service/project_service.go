package service

import (
	"context"

	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/domain"
)

// ProjectAPI is the part of the backend client the admin project pages use.
type ProjectAPI interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, token string, in domain.ProjectInput, image *backend.Upload) (*domain.Project, error)
	UpdateProject(ctx context.Context, token, id string, in domain.ProjectInput, image *backend.Upload) (*domain.Project, error)
	DeleteProject(ctx context.Context, token, id string) error
	ListTechnologies(ctx context.Context) ([]domain.Technology, error)
}

// Invalidator drops the cached public project list.
type Invalidator interface {
	InvalidateProjects(ctx context.Context)
}

// ProjectService handles project-related business logic
type ProjectService struct {
	api   ProjectAPI
	cache Invalidator
}

// NewProjectService creates a new project service
func NewProjectService(api ProjectAPI, cache Invalidator) *ProjectService {
	return &ProjectService{
		api:   api,
		cache: cache,
	}
}

// List returns all projects, straight from the backend
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.api.ListProjects(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.api.GetProject(ctx, id)
}

// Create creates a new project and invalidates the public snapshot
func (s *ProjectService) Create(ctx context.Context, token string, in domain.ProjectInput, image *backend.Upload) (*domain.Project, error) {
	p, err := s.api.CreateProject(ctx, token, in, image)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateProjects(ctx)
	return p, nil
}

// Update replaces the writable fields of a project
func (s *ProjectService) Update(ctx context.Context, token, id string, in domain.ProjectInput, image *backend.Upload) (*domain.Project, error) {
	p, err := s.api.UpdateProject(ctx, token, id, in, image)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateProjects(ctx)
	return p, nil
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, token, id string) error {
	if err := s.api.DeleteProject(ctx, token, id); err != nil {
		return err
	}
	s.cache.InvalidateProjects(ctx)
	return nil
}

// TechnologyOptions feeds the technology suggestions of the project form.
// Failures only cost the suggestions.
func (s *ProjectService) TechnologyOptions(ctx context.Context) []domain.Technology {
	techs, err := s.api.ListTechnologies(ctx)
	if err != nil {
		return nil
	}
	return domain.ActiveTechnologies(techs)
}
