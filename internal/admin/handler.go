// Package admin serves the dashboard, the technology list and the
// import/export tools of the admin panel.
package admin

import (
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dexsamir/portfolio/internal/auth"
	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/cache"
	"github.com/dexsamir/portfolio/internal/domain"
	"github.com/dexsamir/portfolio/internal/forms"
	"github.com/dexsamir/portfolio/internal/web"
)

const maxImportBytes = 5 << 20

type Handler struct {
	api       *backend.Client
	snapshots *cache.Snapshots
	sessions  *auth.Sessions
	logger    *slog.Logger
}

func New(api *backend.Client, snapshots *cache.Snapshots, sessions *auth.Sessions, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{api: api, snapshots: snapshots, sessions: sessions, logger: logger}
}

// Register attaches the routes below the guarded /admin group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.dashboard)
	rg.GET("/technologies", h.technologies)
	rg.POST("/technologies", h.createTechnology)
	rg.POST("/technologies/:id", h.renameTechnology)
	rg.POST("/technologies/:id/delete", h.deleteTechnology)
	rg.GET("/export", h.exportJSON)
	rg.GET("/export/typescript", h.exportTypeScript)
	rg.GET("/import", h.importPage)
	rg.POST("/import", h.importData)
}

func (h *Handler) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	token := auth.Token(c)

	pending, err := h.api.ListPendingTestimonials(ctx, token)
	if err != nil {
		if h.sessions.Evict(c, err) {
			return
		}
		h.logger.ErrorContext(ctx, "dashboard pending testimonials failed", "error", err)
	}
	projects, err := h.api.ListProjects(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "dashboard projects failed", "error", err)
	}
	testimonials, err := h.api.ListTestimonials(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "dashboard testimonials failed", "error", err)
	}
	techs, err := h.api.ListTechnologies(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "dashboard technologies failed", "error", err)
	}

	web.Render(c, http.StatusOK, "admin/dashboard", gin.H{
		"ProjectCount":    len(projects),
		"ApprovedCount":   len(domain.PublicTestimonials(testimonials)),
		"PendingCount":    len(pending),
		"TechnologyCount": len(domain.ActiveTechnologies(techs)),
	})
}

func (h *Handler) technologies(c *gin.Context) {
	h.renderTechnologies(c, http.StatusOK, forms.TechnologyForm{}, nil)
}

func (h *Handler) createTechnology(c *gin.Context) {
	var form forms.TechnologyForm
	_ = c.ShouldBind(&form)

	name, err := form.Validate()
	if err != nil {
		h.renderTechnologies(c, http.StatusUnprocessableEntity, form, err)
		return
	}
	if _, err := h.api.CreateTechnology(c.Request.Context(), auth.Token(c), name); err != nil {
		if h.sessions.Evict(c, err) {
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "create technology failed", "name", name, "error", err)
		h.renderTechnologies(c, http.StatusBadGateway, form, "Failed to add technology.")
		return
	}
	web.RedirectWithFlash(c, "/admin/technologies", "Technology added.")
}

func (h *Handler) renameTechnology(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var form forms.TechnologyForm
	_ = c.ShouldBind(&form)

	name, err := form.Validate()
	if err != nil {
		h.renderTechnologies(c, http.StatusUnprocessableEntity, forms.TechnologyForm{}, err)
		return
	}
	if _, err := h.api.RenameTechnology(c.Request.Context(), auth.Token(c), id, name); err != nil {
		if h.sessions.Evict(c, err) {
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "rename technology failed", "technology_id", id, "error", err)
		web.RedirectWithFlash(c, "/admin/technologies", "Failed to rename technology.")
		return
	}
	web.RedirectWithFlash(c, "/admin/technologies", "Technology renamed.")
}

func (h *Handler) deleteTechnology(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := h.api.DeleteTechnology(c.Request.Context(), auth.Token(c), id); err != nil {
		if h.sessions.Evict(c, err) {
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete technology failed", "technology_id", id, "error", err)
		web.RedirectWithFlash(c, "/admin/technologies", "Failed to remove technology.")
		return
	}
	web.RedirectWithFlash(c, "/admin/technologies", "Technology removed.")
}

// errs is a forms.FieldErrors or a plain message.
func (h *Handler) renderTechnologies(c *gin.Context, status int, form forms.TechnologyForm, errs any) {
	techs, err := h.api.ListTechnologies(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list technologies failed", "error", err)
	}
	techs = domain.ActiveTechnologies(techs)
	sort.Slice(techs, func(i, j int) bool {
		return strings.ToLower(techs[i].Name) < strings.ToLower(techs[j].Name)
	})
	web.Render(c, status, "admin/technologies", gin.H{
		"Technologies": techs,
		"Form":         form,
		"Errors":       errs,
	})
}

func (h *Handler) exportJSON(c *gin.Context) {
	snap, ok := h.export(c)
	if !ok {
		return
	}
	data, err := snap.MarshalIndent()
	if err != nil {
		web.Failure(c, http.StatusInternalServerError, "Could not encode the export.")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="portfolio-data.json"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

type codeModule struct {
	Name   string
	Source string
}

func (h *Handler) exportTypeScript(c *gin.Context) {
	snap, ok := h.export(c)
	if !ok {
		return
	}
	files, err := snap.TypeScriptModules()
	if err != nil {
		web.Failure(c, http.StatusInternalServerError, "Could not generate the code export.")
		return
	}
	modules := make([]codeModule, 0, len(files))
	for name, src := range files {
		modules = append(modules, codeModule{Name: name, Source: src})
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].Name < modules[j].Name })
	web.Render(c, http.StatusOK, "admin/typescript", gin.H{"Modules": modules})
}

func (h *Handler) export(c *gin.Context) (domain.Snapshot, bool) {
	snap, err := Export(c.Request.Context(), h.api, auth.Token(c))
	if err != nil {
		if h.sessions.Evict(c, err) {
			return snap, false
		}
		h.logger.ErrorContext(c.Request.Context(), "export failed", "error", err)
		web.Failure(c, http.StatusBadGateway, "Could not load data from the API.")
		return snap, false
	}
	return snap, true
}

func (h *Handler) importPage(c *gin.Context) {
	web.Render(c, http.StatusOK, "admin/data", nil)
}

func (h *Handler) importData(c *gin.Context) {
	data, err := importPayload(c)
	if err != nil || len(strings.TrimSpace(string(data))) == 0 {
		web.Render(c, http.StatusBadRequest, "admin/data", gin.H{"Error": "Choose a file or paste the exported JSON."})
		return
	}
	snap, err := domain.ParseSnapshot(data)
	if err != nil {
		web.Render(c, http.StatusUnprocessableEntity, "admin/data", gin.H{"Error": "Invalid data format: " + err.Error()})
		return
	}

	apply := c.PostForm("apply") != ""
	res, err := Import(c.Request.Context(), h.api, auth.Token(c), snap, apply, h.logger)
	if apply {
		// An aborted run may already have written some records.
		h.snapshots.InvalidateProjects(c.Request.Context())
		h.snapshots.InvalidateTestimonials(c.Request.Context())
	}
	if err != nil {
		if h.sessions.Evict(c, err) {
			return
		}
		web.Render(c, http.StatusBadGateway, "admin/data", gin.H{"Error": "Import failed: " + err.Error()})
		return
	}
	if apply {
		h.logger.InfoContext(c.Request.Context(), "import applied",
			"projects", res.Projects, "testimonials", res.Testimonials, "failed", res.Failed)
	}
	web.Render(c, http.StatusOK, "admin/data", gin.H{"Result": res})
}

func importPayload(c *gin.Context) ([]byte, error) {
	if fh, err := c.FormFile("file"); err == nil && fh.Size > 0 {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxImportBytes))
	}
	return []byte(c.PostForm("data")), nil
}
