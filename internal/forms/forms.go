// Package forms validates admin and public form submissions before anything
// is sent to the backend.
package forms

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dexsamir/portfolio/internal/domain"
)

// MaxAvatarBytes caps uploaded testimonial avatars.
const MaxAvatarBytes = 10 << 20

// MaxImageBytes caps uploaded project images.
const MaxImageBytes = 10 << 20

// FieldError is a single field-specific validation message.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors keeps messages in the order the fields were checked.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, len(fe))
	for i, e := range fe {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether field has a message.
func (fe FieldErrors) Has(field string) bool {
	return fe.Get(field) != ""
}

// Get returns the message for field, or "".
func (fe FieldErrors) Get(field string) string {
	for _, e := range fe {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// First returns the first message, for single-banner forms.
func (fe FieldErrors) First() string {
	if len(fe) == 0 {
		return ""
	}
	return fe[0].Message
}

func (fe *FieldErrors) add(field, msg string) {
	*fe = append(*fe, FieldError{Field: field, Message: msg})
}

func (fe *FieldErrors) required(field, label, value string) {
	if strings.TrimSpace(value) == "" {
		fe.add(field, label+" is required")
	}
}

func (fe FieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// ProjectForm is the admin create/edit project form.
type ProjectForm struct {
	Title        string `form:"title"`
	Description  string `form:"description"`
	Technologies string `form:"technologies"`
	GithubURL    string `form:"githubUrl"`
	LiveURL      string `form:"liveUrl"`
	ImageURL     string `form:"image"`
}

// ProjectFormFrom pre-fills the edit form.
func ProjectFormFrom(p domain.Project) ProjectForm {
	return ProjectForm{
		Title:        p.Title,
		Description:  p.Description,
		Technologies: strings.Join(p.Technologies, ", "),
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		ImageURL:     p.Image,
	}
}

// Validate checks required fields and URL shapes. imageSize is the size of an
// uploaded image, or zero when none was attached.
func (f ProjectForm) Validate(imageSize int64) (domain.ProjectInput, error) {
	var errs FieldErrors
	errs.required("title", "Title", f.Title)
	errs.required("description", "Description", f.Description)
	if f.GithubURL != "" && !isHTTPURL(f.GithubURL) {
		errs.add("githubUrl", "GitHub URL must be an http(s) URL")
	}
	if f.LiveURL != "" && !isHTTPURL(f.LiveURL) {
		errs.add("liveUrl", "Live URL must be an http(s) URL")
	}
	if imageSize > MaxImageBytes {
		errs.add("image", "Image must be less than 10MB")
	}
	if err := errs.err(); err != nil {
		return domain.ProjectInput{}, err
	}

	return domain.ProjectInput{
		Title:        strings.TrimSpace(f.Title),
		Description:  strings.TrimSpace(f.Description),
		Image:        strings.TrimSpace(f.ImageURL),
		Technologies: ParseTechnologies(f.Technologies),
		GithubURL:    strings.TrimSpace(f.GithubURL),
		LiveURL:      strings.TrimSpace(f.LiveURL),
	}, nil
}

// ParseTechnologies splits a comma separated list, trimming blanks and
// dropping case-insensitive duplicates while keeping first-seen order.
func ParseTechnologies(raw string) []string {
	out := make([]string, 0, 8)
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}

// TestimonialForm is shared by the public submission dialog and the admin panel.
type TestimonialForm struct {
	Name     string `form:"name"`
	Position string `form:"position"`
	Company  string `form:"company"`
	Avatar   string `form:"avatar"`
	Content  string `form:"content"`
	Rating   string `form:"rating"`
}

// TestimonialFormFrom pre-fills the admin edit form.
func TestimonialFormFrom(t domain.Testimonial) TestimonialForm {
	return TestimonialForm{
		Name:     t.Name,
		Position: t.Position,
		Company:  t.Company,
		Avatar:   t.Avatar,
		Content:  t.Content,
		Rating:   strconv.Itoa(t.Rating),
	}
}

// Validate checks fields in display order. avatarSize is the size of an
// uploaded avatar, or zero.
func (f TestimonialForm) Validate(avatarSize int64) (domain.TestimonialInput, error) {
	var errs FieldErrors
	errs.required("name", "Name", f.Name)
	errs.required("position", "Position", f.Position)
	errs.required("company", "Company", f.Company)
	errs.required("content", "Content", f.Content)

	rating := domain.MaxRating
	if strings.TrimSpace(f.Rating) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(f.Rating))
		if err != nil || n < domain.MinRating || n > domain.MaxRating {
			errs.add("rating", "Rating must be between 1 and 5")
		} else {
			rating = n
		}
	}
	if avatarSize > MaxAvatarBytes {
		errs.add("avatar", "File length must be less than 10MB")
	}
	if err := errs.err(); err != nil {
		return domain.TestimonialInput{}, err
	}

	return domain.TestimonialInput{
		Name:     strings.TrimSpace(f.Name),
		Position: strings.TrimSpace(f.Position),
		Company:  strings.TrimSpace(f.Company),
		Avatar:   strings.TrimSpace(f.Avatar),
		Content:  strings.TrimSpace(f.Content),
		Rating:   rating,
	}, nil
}

// LoginForm is the admin sign-in form.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (f LoginForm) Validate() error {
	var errs FieldErrors
	errs.required("email", "Email", f.Email)
	errs.required("password", "Password", f.Password)
	return errs.err()
}

// ContactForm is the public "send me a message" form.
type ContactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

func (f ContactForm) Validate() error {
	var errs FieldErrors
	errs.required("name", "Name", f.Name)
	errs.required("email", "Email", f.Email)
	errs.required("subject", "Subject", f.Subject)
	errs.required("message", "Message", f.Message)
	return errs.err()
}

// TechnologyForm adds or renames a technology tag.
type TechnologyForm struct {
	Name string `form:"name"`
}

func (f TechnologyForm) Validate() (string, error) {
	var errs FieldErrors
	errs.required("name", "Name", f.Name)
	if err := errs.err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(f.Name), nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
