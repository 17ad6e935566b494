package lead

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public intake endpoint. The blanket per-client
// limiter is injected by the caller so tests can run without it.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, middleware ...gin.HandlerFunc) {
	leads := r.Group("/leads")
	leads.Use(middleware...)
	leads.POST("", handler.Submit)
}
