// Package auth ties the session cookie to the token store and evicts the
// token whenever the backend rejects it.
package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/session"
)

// LoginPath is where unauthenticated and evicted admins are sent.
const LoginPath = "/login"

type Sessions struct {
	store  *session.Store
	secure bool
	logger *slog.Logger
}

func NewSessions(store *session.Store, secure bool, logger *slog.Logger) *Sessions {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sessions{store: store, secure: secure, logger: logger}
}

// Start stores token under a fresh session id and sets the cookie.
func (s *Sessions) Start(c *gin.Context, token string) error {
	sid := session.NewID()
	if err := s.store.Put(c.Request.Context(), sid, token); err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, sid, int(s.store.TTL().Seconds()), "/", "", s.secure, true)
	return nil
}

// Lookup resolves the request cookie to a stored token.
func (s *Sessions) Lookup(c *gin.Context) (sid, token string, err error) {
	sid, err = c.Cookie(session.CookieName)
	if err != nil || sid == "" {
		return "", "", session.ErrNoToken
	}
	token, err = s.store.Get(c.Request.Context(), sid)
	if err != nil {
		return sid, "", err
	}
	return sid, token, nil
}

// End deletes the stored token and expires the cookie.
func (s *Sessions) End(c *gin.Context) {
	sid := c.GetString(CtxSessionID)
	if sid == "" {
		sid, _ = c.Cookie(session.CookieName)
	}
	if err := s.store.Delete(c.Request.Context(), sid); err != nil {
		s.logger.ErrorContext(c.Request.Context(), "session delete failed", "error", err)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", s.secure, true)
}

// Evict handles a rejected token: the session is ended and the admin is
// redirected to the login page. It reports whether err was such a rejection.
func (s *Sessions) Evict(c *gin.Context, err error) bool {
	if !errors.Is(err, backend.ErrUnauthorized) {
		return false
	}
	s.logger.WarnContext(c.Request.Context(), "backend rejected admin token, evicting session",
		"path", c.Request.URL.Path, "error", err)
	s.End(c)
	c.Redirect(http.StatusSeeOther, LoginPath)
	c.Abort()
	return true
}
