package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dexsamir/portfolio/internal/session"
)

const (
	CtxToken     = "admin_token"
	CtxClaims    = "admin_claims"
	CtxSessionID = "session_id"
)

// Token returns the bearer token placed in the context by the admin guard.
func Token(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxToken))
}

// ClaimsFrom returns the signed-in admin identity, if any.
func ClaimsFrom(c *gin.Context) (session.Claims, bool) {
	v, ok := c.Get(CtxClaims)
	if !ok {
		return session.Claims{}, false
	}
	claims, ok := v.(session.Claims)
	return claims, ok
}
