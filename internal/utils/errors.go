package utils

import (
	"errors"
	"net/http"

	"promptstack-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// StatusForError maps the store's error kinds onto HTTP status codes. The
// distinction between "not found" and "invalid input" must survive the
// transport boundary.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError writes the envelope for a store error and stops the chain.
func AbortWithError(c *gin.Context, err error) {
	status := StatusForError(err)
	c.AbortWithStatusJSON(status, NewErrorResponse(status, err.Error()))
}
