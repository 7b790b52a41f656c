package http

import (
	"log/slog"

	"github.com/dexsamir/portfolio/internal/auth"
	"github.com/dexsamir/portfolio/internal/auth/service"
)

type Handler struct {
	authService *service.AuthService
	sessions    *auth.Sessions
	logger      *slog.Logger
}

func New(authService *service.AuthService, sessions *auth.Sessions, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{authService: authService, sessions: sessions, logger: logger}
}
