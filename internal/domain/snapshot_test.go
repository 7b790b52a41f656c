package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshotSplitsPending(t *testing.T) {
	s := NewSnapshot(
		[]Project{{ID: "p1", Title: "Site"}},
		[]Testimonial{{ID: "t1", Status: StatusApproved}, {ID: "t2", Status: StatusPending}, {ID: "t3", Status: StatusDenied}},
	)
	require.Len(t, s.Testimonials, 1)
	assert.Equal(t, "t1", s.Testimonials[0].ID)
	require.Len(t, s.PendingTestimonials, 1)
	assert.Equal(t, "t2", s.PendingTestimonials[0].ID)
}

func TestParseSnapshot(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		s, err := ParseSnapshot([]byte(`{"projects":[{"id":"p1","title":"A"}],"testimonials":[],"pendingTestimonials":[{"id":"t1","status":"pending"}]}`))
		require.NoError(t, err)
		assert.Len(t, s.Projects, 1)
		assert.Empty(t, s.Testimonials)
		assert.Len(t, s.PendingTestimonials, 1)
	})

	t.Run("missing testimonials", func(t *testing.T) {
		_, err := ParseSnapshot([]byte(`{"projects":[]}`))
		assert.ErrorIs(t, err, ErrInvalidSnapshot)
	})

	t.Run("null projects", func(t *testing.T) {
		_, err := ParseSnapshot([]byte(`{"projects":null,"testimonials":[]}`))
		assert.ErrorIs(t, err, ErrInvalidSnapshot)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := ParseSnapshot([]byte(`projects: []`))
		assert.ErrorIs(t, err, ErrInvalidSnapshot)
	})
}

func TestSnapshotRoundTripThroughExport(t *testing.T) {
	s := Snapshot{}
	data, err := s.MarshalIndent()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"projects": []`)

	parsed, err := ParseSnapshot(data)
	require.NoError(t, err)
	assert.Empty(t, parsed.Projects)
}

func TestTypeScriptModules(t *testing.T) {
	mods, err := Snapshot{Projects: []Project{{ID: "p1", Title: "Site"}}}.TypeScriptModules()
	require.NoError(t, err)

	projects := mods["projectdata.ts"]
	assert.True(t, strings.HasPrefix(projects, `import type { Project } from "@/types/data-types"`))
	assert.Contains(t, projects, "export const projects: Project[] = [")
	assert.Contains(t, projects, `"title": "Site"`)

	assert.Contains(t, mods["testimonialdata.ts"], "export const testimonials: Testimonial[] = []")
}
