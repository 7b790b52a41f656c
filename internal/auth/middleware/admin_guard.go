package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dexsamir/portfolio/internal/auth"
	"github.com/dexsamir/portfolio/internal/session"
)

// AdminGuard redirects to the login page unless the session holds a token.
// The token and its display claims are stored in the context for handlers.
func AdminGuard(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, token, err := sessions.Lookup(c)
		if err != nil {
			if !errors.Is(err, session.ErrNoToken) {
				_ = c.Error(err)
			}
			c.Redirect(http.StatusSeeOther, auth.LoginPath)
			c.Abort()
			return
		}

		c.Set(auth.CtxSessionID, sid)
		c.Set(auth.CtxToken, token)
		c.Set(auth.CtxClaims, session.ParseClaims(token))
		c.Next()
	}
}
