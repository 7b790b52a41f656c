package web

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/cache"
	"github.com/dexsamir/portfolio/internal/domain"
	"github.com/dexsamir/portfolio/internal/forms"
)

const homeProjectLimit = 3

const (
	submittedMessage    = "Your comment has been submitted successfully! It will be published once approved."
	submitFailedMessage = "Something went wrong while sending your testimonial. Please try again."
)

// Public serves the visitor-facing pages.
type Public struct {
	api       *backend.Client
	snapshots *cache.Snapshots
	logger    *slog.Logger
}

func NewPublic(api *backend.Client, snapshots *cache.Snapshots, logger *slog.Logger) *Public {
	if logger == nil {
		logger = slog.Default()
	}
	return &Public{api: api, snapshots: snapshots, logger: logger}
}

// Register attaches the public pages. throttle guards the testimonial
// submission.
func (h *Public) Register(r gin.IRouter, throttle gin.HandlerFunc) {
	r.GET("/", h.home)
	r.GET("/projects", h.projects)
	r.GET("/resume", h.resume)
	r.GET("/contact", h.contact)
	r.POST("/contact", h.sendContact)
	r.GET("/testimonials", h.testimonials)
	r.POST("/testimonials", throttle, h.submitTestimonial)
	r.GET("/forbidden", Forbidden)
}

func (h *Public) home(c *gin.Context) {
	projects, _ := h.snapshots.Projects(c.Request.Context())
	if len(projects) > homeProjectLimit {
		projects = projects[:homeProjectLimit]
	}
	Render(c, http.StatusOK, "home", gin.H{"Projects": projects})
}

func (h *Public) projects(c *gin.Context) {
	projects, _ := h.snapshots.Projects(c.Request.Context())
	tech := strings.TrimSpace(c.Query("tech"))

	Render(c, http.StatusOK, "projects", gin.H{
		"Projects":     filterByTechnology(projects, tech),
		"Technologies": technologiesOf(projects),
		"Tech":         tech,
	})
}

func (h *Public) resume(c *gin.Context) {
	Render(c, http.StatusOK, "resume", nil)
}

func (h *Public) contact(c *gin.Context) {
	Render(c, http.StatusOK, "contact", gin.H{
		"Form":     forms.ContactForm{},
		"WhatsApp": SiteFrom(c).WhatsAppURL(),
	})
}

func (h *Public) sendContact(c *gin.Context) {
	var form forms.ContactForm
	_ = c.ShouldBind(&form)
	if err := form.Validate(); err != nil {
		Render(c, http.StatusUnprocessableEntity, "contact", gin.H{
			"Form":     form,
			"Errors":   err,
			"WhatsApp": SiteFrom(c).WhatsAppURL(),
		})
		return
	}
	c.Redirect(http.StatusSeeOther, SiteFrom(c).WhatsAppLink(form))
}

func (h *Public) testimonials(c *gin.Context) {
	h.renderTestimonials(c, http.StatusOK, TestimonialFormView{Action: "/testimonials"}, "")
}

func (h *Public) submitTestimonial(c *gin.Context) {
	var form forms.TestimonialForm
	_ = c.ShouldBind(&form)

	upload, size, closer, err := FormUpload(c, "avatarFile")
	if err != nil {
		h.logger.WarnContext(c.Request.Context(), "avatar upload unreadable", "error", err)
	}
	defer CloseUpload(closer)

	view := TestimonialFormView{Action: "/testimonials", Form: form}
	in, err := form.Validate(size)
	if err != nil {
		view.Errors = err
		h.renderTestimonials(c, http.StatusUnprocessableEntity, view, "")
		return
	}

	if _, err := h.api.SubmitTestimonial(c.Request.Context(), "", in, upload); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "testimonial submission failed", "error", err)
		view.Failure = submitFailedMessage
		h.renderTestimonials(c, http.StatusBadGateway, view, "")
		return
	}
	h.renderTestimonials(c, http.StatusCreated, TestimonialFormView{Action: "/testimonials"}, submittedMessage)
}

func (h *Public) renderTestimonials(c *gin.Context, status int, view TestimonialFormView, success string) {
	all, _ := h.snapshots.Testimonials(c.Request.Context())
	Render(c, status, "testimonials", gin.H{
		"Testimonials": domain.PublicTestimonials(all),
		"FormView":     view,
		"Success":      success,
	})
}

func filterByTechnology(projects []domain.Project, tech string) []domain.Project {
	if tech == "" {
		return projects
	}
	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		for _, t := range p.Technologies {
			if strings.EqualFold(t, tech) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func technologiesOf(projects []domain.Project) []string {
	seen := make(map[string]string)
	for _, p := range projects {
		for _, t := range p.Technologies {
			key := strings.ToLower(t)
			if _, ok := seen[key]; !ok {
				seen[key] = t
			}
		}
	}
	out := make([]string, 0, len(seen))
	for _, t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
