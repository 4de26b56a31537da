package api

import (
	"promptstack-backend/internal/api/v1/folder"
	"promptstack-backend/internal/api/v1/prompt"
	"promptstack-backend/internal/middleware"
	"promptstack-backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine over an already-constructed store. The
// router holds no state of its own; every endpoint is a thin translation of
// a store operation.
func NewRouter(s *store.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	v1 := router.Group("/api/v1")
	{
		prompt.RegisterRoutes(v1, s)
		folder.RegisterRoutes(v1, s)
	}

	return router
}
