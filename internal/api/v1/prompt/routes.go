package prompt

import (
	"promptstack-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the prompt, version and compose endpoints.
func RegisterRoutes(r *gin.RouterGroup, s *store.Store) {
	h := NewHandler(s)

	prompts := r.Group("/prompts")
	{
		prompts.POST("", h.Create)
		prompts.GET("", h.List)
		prompts.GET("/:id", h.Get)
		prompts.PUT("/:id", h.Update)
		prompts.DELETE("/:id", h.Delete)
		prompts.GET("/:id/versions", h.ListVersions)
		prompts.POST("/:id/versions/:number/restore", h.RestoreVersion)
	}

	r.POST("/compose", h.Compose)
}
