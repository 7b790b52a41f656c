// Package cache keeps the last good copy of the public project and
// testimonial lists in Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dexsamir/portfolio/internal/domain"
)

const (
	ProjectsKey     = "portfolio:projects"
	TestimonialsKey = "portfolio:testimonials"

	defaultFreshFor = 5 * time.Minute
)

// Source is where snapshots are fetched from on a miss.
type Source interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
}

type entry[T any] struct {
	FetchedAt time.Time `json:"fetchedAt"`
	Items     []T       `json:"items"`
}

// Snapshots is a read-through cache over Source. Entries never expire in
// Redis; an entry older than freshFor is refetched and kept as a fallback
// when the refetch fails.
type Snapshots struct {
	client   *redis.Client
	src      Source
	freshFor time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func NewSnapshots(client *redis.Client, src Source, freshFor time.Duration, logger *slog.Logger) *Snapshots {
	if freshFor <= 0 {
		freshFor = defaultFreshFor
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Snapshots{client: client, src: src, freshFor: freshFor, logger: logger, now: time.Now}
}

// Projects returns the project list. On a backend failure with nothing cached
// it returns an empty list together with the error.
func (s *Snapshots) Projects(ctx context.Context) ([]domain.Project, error) {
	return readThrough(ctx, s, ProjectsKey, s.src.ListProjects)
}

// Testimonials returns every testimonial the backend exposes; callers filter
// by status.
func (s *Snapshots) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return readThrough(ctx, s, TestimonialsKey, s.src.ListTestimonials)
}

// InvalidateProjects drops the cached project list so the next read refetches.
func (s *Snapshots) InvalidateProjects(ctx context.Context) {
	s.invalidate(ctx, ProjectsKey)
}

func (s *Snapshots) InvalidateTestimonials(ctx context.Context) {
	s.invalidate(ctx, TestimonialsKey)
}

// Refresh refetches both lists unconditionally.
func (s *Snapshots) Refresh(ctx context.Context) error {
	projects, err := s.src.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("refresh projects: %w", err)
	}
	store(ctx, s, ProjectsKey, projects)

	testimonials, err := s.src.ListTestimonials(ctx)
	if err != nil {
		return fmt.Errorf("refresh testimonials: %w", err)
	}
	store(ctx, s, TestimonialsKey, testimonials)
	return nil
}

func (s *Snapshots) invalidate(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.WarnContext(ctx, "snapshot invalidate failed", "key", key, "error", err)
	}
}

func readThrough[T any](ctx context.Context, s *Snapshots, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	cached, ok := load[T](ctx, s, key)
	if ok && s.now().Sub(cached.FetchedAt) < s.freshFor {
		return cached.Items, nil
	}

	items, err := fetch(ctx)
	if err != nil {
		if ok {
			s.logger.WarnContext(ctx, "serving stale snapshot", "key", key, "error", err)
			return cached.Items, nil
		}
		s.logger.ErrorContext(ctx, "snapshot fetch failed", "key", key, "error", err)
		return []T{}, err
	}
	if items == nil {
		items = []T{}
	}
	store(ctx, s, key, items)
	return items, nil
}

func load[T any](ctx context.Context, s *Snapshots, key string) (entry[T], bool) {
	var e entry[T]
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return e, false
	}
	if err != nil {
		s.logger.WarnContext(ctx, "snapshot read failed", "key", key, "error", err)
		return e, false
	}
	if err := json.Unmarshal(data, &e); err != nil {
		s.logger.WarnContext(ctx, "snapshot decode failed", "key", key, "error", err)
		return e, false
	}
	if e.Items == nil {
		e.Items = []T{}
	}
	return e, true
}

func store[T any](ctx context.Context, s *Snapshots, key string, items []T) {
	data, err := json.Marshal(entry[T]{FetchedAt: s.now(), Items: items})
	if err != nil {
		s.logger.ErrorContext(ctx, "snapshot encode failed", "key", key, "error", err)
		return
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		s.logger.WarnContext(ctx, "snapshot write failed", "key", key, "error", err)
	}
}
