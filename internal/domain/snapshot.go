package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Snapshot is the export/import document of the admin panel.
type Snapshot struct {
	Projects            []Project     `json:"projects"`
	Testimonials        []Testimonial `json:"testimonials"`
	PendingTestimonials []Testimonial `json:"pendingTestimonials,omitempty"`
}

// NewSnapshot splits testimonials into published and pending lists.
func NewSnapshot(projects []Project, testimonials []Testimonial) Snapshot {
	return Snapshot{
		Projects:            projects,
		Testimonials:        PublicTestimonials(testimonials),
		PendingTestimonials: FilterByStatus(testimonials, StatusPending),
	}
}

// MarshalIndent renders the snapshot with two-space indentation.
func (s Snapshot) MarshalIndent() ([]byte, error) {
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	if s.Testimonials == nil {
		s.Testimonials = []Testimonial{}
	}
	return json.MarshalIndent(s, "", "  ")
}

// ParseSnapshot decodes an exported document. Both "projects" and
// "testimonials" must be present; "pendingTestimonials" is optional.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	for _, key := range []string{"projects", "testimonials"} {
		raw, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidSnapshot, key)
		}
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &s, nil
}

// TypeScriptModules renders the projects and testimonials as TypeScript data
// files, keyed by the file name they are meant to be pasted into.
func (s Snapshot) TypeScriptModules() (map[string]string, error) {
	projects, err := tsModule("Project", "projects", s.Projects)
	if err != nil {
		return nil, err
	}
	testimonials, err := tsModule("Testimonial", "testimonials", s.Testimonials)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"projectdata.ts":     projects,
		"testimonialdata.ts": testimonials,
	}, nil
}

func tsModule(typeName, varName string, v any) (string, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", varName, err)
	}
	if string(body) == "null" {
		body = []byte("[]")
	}
	return fmt.Sprintf("import type { %s } from \"@/types/data-types\"\n\nexport const %s: %s[] = %s\n",
		typeName, varName, typeName, body), nil
}
