package http

import (
	"log/slog"

	"github.com/dexsamir/portfolio/internal/auth"
	"github.com/dexsamir/portfolio/internal/testimonials/service"
)

// Handler serves the admin moderation pages.
type Handler struct {
	svc      *service.TestimonialService
	sessions *auth.Sessions
	logger   *slog.Logger
}

func New(svc *service.TestimonialService, sessions *auth.Sessions, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, sessions: sessions, logger: logger}
}
