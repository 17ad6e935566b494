package catalog

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public catalog reads.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/catalog", handler.GetCatalog)
	r.GET("/programs/:id", handler.GetProgram)
}
