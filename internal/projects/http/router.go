package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/new", h.newForm)
	rg.POST("", h.create)
	rg.GET("/:id/edit", h.editForm)
	rg.POST("/:id", h.update)
	rg.POST("/:id/delete", h.delete)
}
