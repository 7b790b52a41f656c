package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dexsamir/portfolio/internal/auth/domain"
	"github.com/dexsamir/portfolio/internal/forms"
	"github.com/dexsamir/portfolio/internal/web"
)

func (h *Handler) loginPage(c *gin.Context) {
	if _, _, err := h.sessions.Lookup(c); err == nil {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}
	web.Render(c, http.StatusOK, "login", gin.H{"Form": forms.LoginForm{}})
}

func (h *Handler) login(c *gin.Context) {
	var form forms.LoginForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		web.Render(c, http.StatusUnprocessableEntity, "login", gin.H{"Form": form, "Errors": err})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrInvalidCredentials) {
			status = http.StatusUnauthorized
			err = domain.ErrInvalidCredentials
		} else {
			err = domain.ErrLoginUnavailable
		}
		form.Password = ""
		web.Render(c, status, "login", gin.H{"Form": form, "Error": err.Error()})
		return
	}

	if err := h.sessions.Start(c, token); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "session start failed", "error", err)
		web.Render(c, http.StatusInternalServerError, "login", gin.H{"Form": forms.LoginForm{Email: form.Email}, "Error": domain.ErrLoginUnavailable.Error()})
		return
	}
	h.logger.InfoContext(c.Request.Context(), "admin signed in")
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *Handler) logout(c *gin.Context) {
	h.sessions.End(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
