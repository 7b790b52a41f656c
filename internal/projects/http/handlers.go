package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dexsamir/portfolio/internal/auth"
	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/forms"
	"github.com/dexsamir/portfolio/internal/web"
)

const listPath = "/admin/projects"

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list projects failed", "error", err)
		web.Render(c, http.StatusOK, "admin/projects", gin.H{"Projects": nil, "Flash": "Could not load projects from the API."})
		return
	}
	web.Render(c, http.StatusOK, "admin/projects", gin.H{"Projects": items})
}

func (h *Handler) newForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "", forms.ProjectForm{}, nil, "")
}

func (h *Handler) create(c *gin.Context) {
	var form forms.ProjectForm
	_ = c.ShouldBind(&form)

	upload, size, closer, err := web.FormUpload(c, "imageFile")
	if err != nil {
		h.renderForm(c, http.StatusBadRequest, "", form, nil, "The uploaded image could not be read.")
		return
	}
	defer web.CloseUpload(closer)

	in, err := form.Validate(size)
	if err != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, "", form, err, "")
		return
	}

	p, err := h.svc.Create(c.Request.Context(), auth.Token(c), in, upload)
	if err != nil {
		if h.sessions.Evict(c, err) {
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "create project failed", "error", err)
		h.renderForm(c, http.StatusBadGateway, "", form, nil, "Failed to create project. Please try again.")
		return
	}
	h.logger.InfoContext(c.Request.Context(), "project created", "project_id", p.ID)
	web.RedirectWithFlash(c, listPath, "Project created.")
}

func (h *Handler) editForm(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			web.NotFound(c)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get project failed", "project_id", id, "error", err)
		web.Failure(c, http.StatusBadGateway, "Could not load the project.")
		return
	}
	h.renderForm(c, http.StatusOK, p.ID, forms.ProjectFormFrom(*p), nil, "")
}

func (h *Handler) update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var form forms.ProjectForm
	_ = c.ShouldBind(&form)

	upload, size, closer, err := web.FormUpload(c, "imageFile")
	if err != nil {
		h.renderForm(c, http.StatusBadRequest, id, form, nil, "The uploaded image could not be read.")
		return
	}
	defer web.CloseUpload(closer)

	in, err := form.Validate(size)
	if err != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, id, form, err, "")
		return
	}

	if _, err := h.svc.Update(c.Request.Context(), auth.Token(c), id, in, upload); err != nil {
		if h.sessions.Evict(c, err) {
			return
		}
		if errors.Is(err, backend.ErrNotFound) {
			web.NotFound(c)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "update project failed", "project_id", id, "error", err)
		h.renderForm(c, http.StatusBadGateway, id, form, nil, "Failed to update project. Please try again.")
		return
	}
	web.RedirectWithFlash(c, listPath, "Project updated.")
}

func (h *Handler) delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := h.svc.Delete(c.Request.Context(), auth.Token(c), id); err != nil {
		if h.sessions.Evict(c, err) {
			return
		}
		if !errors.Is(err, backend.ErrNotFound) {
			h.logger.ErrorContext(c.Request.Context(), "delete project failed", "project_id", id, "error", err)
			web.RedirectWithFlash(c, listPath, "Failed to delete project. Please try again.")
			return
		}
	}
	web.RedirectWithFlash(c, listPath, "Project deleted.")
}

func (h *Handler) renderForm(c *gin.Context, status int, id string, form forms.ProjectForm, errs error, failure string) {
	action := listPath
	if id != "" {
		action = listPath + "/" + id
	}
	web.Render(c, status, "admin/project_form", gin.H{
		"ID":           id,
		"Action":       action,
		"Form":         form,
		"Errors":       errs,
		"Error":        failure,
		"Technologies": h.svc.TechnologyOptions(c.Request.Context()),
	})
}
