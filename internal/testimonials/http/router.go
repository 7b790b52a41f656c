package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.board)
	rg.POST("", h.create)
	rg.GET("/:id/edit", h.editForm)
	rg.POST("/:id", h.update)
	rg.POST("/:id/approve", h.approve)
	rg.POST("/:id/deny", h.deny)
	rg.POST("/:id/delete", h.delete)
}
