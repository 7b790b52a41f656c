package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dexsamir/portfolio/internal/auth/domain"
	"github.com/dexsamir/portfolio/internal/backend"
)

// LoginAPI is the subset of the backend client used to sign in.
type LoginAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthService struct {
	api    LoginAPI
	logger *slog.Logger
}

func NewAuthService(api LoginAPI, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{api: api, logger: logger}
}

// Login exchanges credentials for a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	token, err := s.api.Login(ctx, email, password)
	if err == nil {
		return token, nil
	}
	var apiErr *backend.APIError
	if errors.Is(err, backend.ErrUnauthorized) || (errors.As(err, &apiErr) && apiErr.Status == 400) {
		return "", domain.ErrInvalidCredentials
	}
	s.logger.ErrorContext(ctx, "login failed", "error", err)
	return "", fmt.Errorf("%w: %v", domain.ErrLoginUnavailable, err)
}
