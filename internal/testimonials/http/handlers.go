package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dexsamir/portfolio/internal/auth"
	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/forms"
	"github.com/dexsamir/portfolio/internal/web"
)

const boardPath = "/admin/testimonials"

func (h *Handler) board(c *gin.Context) {
	h.renderBoard(c, http.StatusOK, web.TestimonialFormView{Action: boardPath, AllowPublish: true})
}

func (h *Handler) create(c *gin.Context) {
	var form forms.TestimonialForm
	_ = c.ShouldBind(&form)
	view := web.TestimonialFormView{Action: boardPath, Form: form, AllowPublish: true}

	upload, size, closer, err := web.FormUpload(c, "avatarFile")
	if err != nil {
		view.Failure = "The uploaded avatar could not be read."
		h.renderBoard(c, http.StatusBadRequest, view)
		return
	}
	defer web.CloseUpload(closer)

	in, err := form.Validate(size)
	if err != nil {
		view.Errors = err
		h.renderBoard(c, http.StatusUnprocessableEntity, view)
		return
	}

	publish := c.PostForm("publish") != ""
	if _, err := h.svc.Create(c.Request.Context(), auth.Token(c), in, upload, publish); err != nil {
		if h.sessions.Evict(c, err) {
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "create testimonial failed", "error", err)
		view.Failure = "Failed to add testimonial. Please try again."
		h.renderBoard(c, http.StatusBadGateway, view)
		return
	}
	web.RedirectWithFlash(c, boardPath, "Testimonial added.")
}

func (h *Handler) editForm(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			web.NotFound(c)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get testimonial failed", "testimonial_id", id, "error", err)
		web.Failure(c, http.StatusBadGateway, "Could not load the testimonial.")
		return
	}
	web.Render(c, http.StatusOK, "admin/testimonial_form", gin.H{
		"FormView": web.TestimonialFormView{Action: boardPath + "/" + t.ID, Form: forms.TestimonialFormFrom(*t), Editing: true},
	})
}

func (h *Handler) update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var form forms.TestimonialForm
	_ = c.ShouldBind(&form)
	view := web.TestimonialFormView{Action: boardPath + "/" + id, Form: form, Editing: true}

	in, err := form.Validate(0)
	if err != nil {
		view.Errors = err
		web.Render(c, http.StatusUnprocessableEntity, "admin/testimonial_form", gin.H{"FormView": view})
		return
	}

	if _, err := h.svc.Update(c.Request.Context(), auth.Token(c), id, in); err != nil {
		if h.sessions.Evict(c, err) {
			return
		}
		if errors.Is(err, backend.ErrNotFound) {
			web.NotFound(c)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "update testimonial failed", "testimonial_id", id, "error", err)
		view.Failure = "Failed to update testimonial. Please try again."
		web.Render(c, http.StatusBadGateway, "admin/testimonial_form", gin.H{"FormView": view})
		return
	}
	h.logger.InfoContext(c.Request.Context(), "testimonial updated", "testimonial_id", id)
	web.RedirectWithFlash(c, boardPath, "Testimonial updated.")
}

func (h *Handler) approve(c *gin.Context) {
	h.transition(c, "approve", h.svc.Approve, "Testimonial approved.")
}

func (h *Handler) deny(c *gin.Context) {
	h.transition(c, "deny", h.svc.Deny, "Testimonial denied.")
}

func (h *Handler) delete(c *gin.Context) {
	h.transition(c, "delete", h.svc.Delete, "Testimonial deleted.")
}

func (h *Handler) transition(c *gin.Context, action string, fn func(ctx context.Context, token, id string) error, done string) {
	id := strings.TrimSpace(c.Param("id"))
	if err := fn(c.Request.Context(), auth.Token(c), id); err != nil {
		if h.sessions.Evict(c, err) {
			return
		}
		if errors.Is(err, backend.ErrNotFound) {
			web.RedirectWithFlash(c, boardPath, "That testimonial no longer exists.")
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "testimonial "+action+" failed", "testimonial_id", id, "error", err)
		web.RedirectWithFlash(c, boardPath, "Failed to "+action+" testimonial. Please try again.")
		return
	}
	h.logger.InfoContext(c.Request.Context(), "testimonial "+action, "testimonial_id", id)
	web.RedirectWithFlash(c, boardPath, done)
}

func (h *Handler) renderBoard(c *gin.Context, status int, view web.TestimonialFormView) {
	board, err := h.svc.Board(c.Request.Context(), auth.Token(c))
	if err != nil {
		if h.sessions.Evict(c, err) {
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "load testimonials failed", "error", err)
		web.Failure(c, http.StatusBadGateway, "Could not load testimonials from the API.")
		return
	}
	web.Render(c, status, "admin/testimonials", gin.H{
		"Pending":  board.Pending,
		"Approved": board.Approved,
		"Denied":   board.Denied,
		"FormView": view,
	})
}
