package http

import "github.com/gin-gonic/gin"

// Register attaches the login routes. throttle runs before credentials are
// checked.
func (h *Handler) Register(r gin.IRouter, throttle gin.HandlerFunc) {
	r.GET("/login", h.loginPage)
	r.POST("/login", throttle, h.login)
	r.POST("/logout", h.logout)
}
