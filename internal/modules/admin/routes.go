package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the token-gated admin surface. The export route is
// registered before :id so gin does not treat "export" as a lead id.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads")
	{
		leads.GET("", handler.ListLeads)
		leads.GET("/export", handler.ExportLeads)
		leads.PATCH("/:id", handler.UpdateLeadStatus)
	}
	r.GET("/programs", handler.ListPrograms)
}
