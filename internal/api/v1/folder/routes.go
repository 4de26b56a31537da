package folder

import (
	"promptstack-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the folder endpoints.
func RegisterRoutes(r *gin.RouterGroup, s *store.Store) {
	h := NewHandler(s)

	folders := r.Group("/folders")
	{
		folders.POST("", h.Create)
		folders.GET("", h.List)
		folders.PUT("/:id", h.Update)
		folders.DELETE("/:id", h.Delete)
	}
}
