package domain

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

const (
	MinRating = 1
	MaxRating = 5
)

var titleCaser = cases.Title(language.English)

// ParseStatus accepts the canonical values plus the legacy "rejected" spelling.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "approved":
		return StatusApproved, nil
	case "denied", "rejected":
		return StatusDenied, nil
	}
	return "", ErrInvalidStatus
}

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusDenied
}

// Label is the human readable form shown in the admin panel.
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	return titleCaser.String(string(s))
}

// UnmarshalJSON never fails: unknown values are kept as-is and, not being
// Valid, are left out of every filtered list.
func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		*s = Status(strings.Trim(string(b), `"`))
		return nil
	}
	if parsed, err := ParseStatus(raw); err == nil {
		*s = parsed
		return nil
	}
	*s = Status(strings.ToLower(strings.TrimSpace(raw)))
	return nil
}

// Testimonial is a user-submitted recommendation awaiting or past moderation.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Company   string    `json:"company"`
	Avatar    string    `json:"avatar,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Status    Status    `json:"status,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}

// TestimonialInput carries the writable fields of a testimonial.
type TestimonialInput struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Avatar   string `json:"avatar,omitempty"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
	Status   Status `json:"status,omitempty"`
}

// Stars returns one entry per rating star, for templates.
func (t Testimonial) Stars() []bool {
	stars := make([]bool, MaxRating)
	for i := range stars {
		stars[i] = i < t.Rating
	}
	return stars
}

// FilterByStatus keeps the testimonials whose status equals s.
func FilterByStatus(in []Testimonial, s Status) []Testimonial {
	out := make([]Testimonial, 0, len(in))
	for _, t := range in {
		if t.Status == s {
			out = append(out, t)
		}
	}
	return out
}

// PublicTestimonials returns what may be shown on the public site.
// Records without a status predate moderation and count as approved.
func PublicTestimonials(in []Testimonial) []Testimonial {
	out := make([]Testimonial, 0, len(in))
	for _, t := range in {
		if t.Status == StatusApproved || t.Status == "" {
			out = append(out, t)
		}
	}
	return out
}
