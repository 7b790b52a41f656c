package http

import (
	"log/slog"

	"github.com/dexsamir/portfolio/internal/auth"
	"github.com/dexsamir/portfolio/internal/projects/service"
)

// Handler bundles the dependencies for the admin project pages.
type Handler struct {
	svc      *service.ProjectService
	sessions *auth.Sessions
	logger   *slog.Logger
}

func New(svc *service.ProjectService, sessions *auth.Sessions, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, sessions: sessions, logger: logger}
}
