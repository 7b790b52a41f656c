package session

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the display identity read from a bearer token. The signature is
// never checked here; the backend remains the only authority on the token.
type Claims struct {
	Name  string
	Email string
	Role  string
}

var fallbackClaims = Claims{Name: "Admin", Role: "admin"}

// ParseClaims decodes token without verification. Tokens that are not JWTs
// yield a generic admin identity.
func ParseClaims(token string) Claims {
	if strings.Count(token, ".") != 2 {
		return fallbackClaims
	}
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return fallbackClaims
	}

	c := Claims{
		Name:  stringClaim(mc, "name", "username", "fullName"),
		Email: stringClaim(mc, "email"),
		Role:  stringClaim(mc, "role"),
	}
	if c.Name == "" {
		if c.Email != "" {
			c.Name = c.Email
		} else {
			c.Name = fallbackClaims.Name
		}
	}
	if c.Role == "" {
		c.Role = fallbackClaims.Role
	}
	return c
}

func stringClaim(mc jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := mc[k].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
