package web

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/domain"
	"github.com/dexsamir/portfolio/internal/forms"
)

// TestimonialFormView feeds the shared testimonial form partial.
type TestimonialFormView struct {
	Action       string
	Form         forms.TestimonialForm
	Errors       error
	Failure      string
	AllowPublish bool
	// Editing hides the upload field; edits are sent as JSON.
	Editing bool
}

// Ratings lists the selectable ratings, best first.
func (v TestimonialFormView) Ratings() []int {
	out := make([]int, 0, domain.MaxRating)
	for n := domain.MaxRating; n >= domain.MinRating; n-- {
		out = append(out, n)
	}
	return out
}

// FormUpload returns the file posted under field, or nil when none was sent.
// The returned closer must be called once the upload has been forwarded.
func FormUpload(c *gin.Context, field string) (*backend.Upload, int64, io.Closer, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil || fh.Size == 0 {
		return nil, 0, nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, 0, nil, fmt.Errorf("open upload: %w", err)
	}
	return &backend.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}, fh.Size, f, nil
}

// CloseUpload releases a file returned by FormUpload.
func CloseUpload(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
