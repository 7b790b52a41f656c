// Package web renders the public site and holds the helpers shared by the
// admin handlers.
package web

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/dexsamir/portfolio/internal/auth"
	"github.com/dexsamir/portfolio/internal/site"
)

const (
	ctxSite     = "site_content"
	flashName   = "portfolio_flash"
	flashMaxAge = 60
)

// WithSite makes the profile content available to every page.
func WithSite(content *site.Content) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxSite, content)
		c.Next()
	}
}

// SiteFrom returns the profile content set by WithSite.
func SiteFrom(c *gin.Context) *site.Content {
	if v, ok := c.Get(ctxSite); ok {
		if content, ok := v.(*site.Content); ok {
			return content
		}
	}
	return &site.Content{}
}

// Render executes the named page with the common layout fields added.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Site"] = SiteFrom(c)
	data["Path"] = c.Request.URL.Path
	if claims, ok := auth.ClaimsFrom(c); ok {
		data["Admin"] = claims
	}
	if msg := takeFlash(c); msg != "" {
		data["Flash"] = msg
	}
	c.HTML(status, name, data)
}

// Flash stores a one-shot notice shown on the next rendered page.
func Flash(c *gin.Context, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashName, url.QueryEscape(msg), flashMaxAge, "/", "", false, true)
}

// RedirectWithFlash is the post/redirect/get tail of every admin write.
func RedirectWithFlash(c *gin.Context, location, msg string) {
	Flash(c, msg)
	c.Redirect(http.StatusSeeOther, location)
}

func takeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashName)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(flashName, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}

// NotFound renders the 404 page.
func NotFound(c *gin.Context) {
	Render(c, http.StatusNotFound, "notfound", nil)
}

// Forbidden renders the 403 page.
func Forbidden(c *gin.Context) {
	Render(c, http.StatusForbidden, "forbidden", nil)
}

// TooManyRequests renders the 429 page and stops the chain.
func TooManyRequests(c *gin.Context) {
	Render(c, http.StatusTooManyRequests, "ratelimited", nil)
	c.Abort()
}

// Failure renders a generic error page.
func Failure(c *gin.Context, status int, msg string) {
	Render(c, status, "error", gin.H{"Status": status, "Message": msg})
}
