package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qaforge/qaforge/pkg/services"
)

// API error codes carried in the response body.
const (
	codeInvalidInput = "invalid_input"
	codeNotFound     = "not_found"
	codeConflict     = "conflict"
	codeUnavailable  = "unavailable"
	codeInternal     = "internal"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message, Code: code})
}

// mapServiceError translates service-layer errors to HTTP responses.
// Unrecognized errors become an opaque 500; the detail goes to the log only.
func (s *Server) mapServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(c, http.StatusBadRequest, codeInvalidInput, ve.Error())
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, codeNotFound, "resource not found")
	case errors.Is(err, services.ErrAlreadyExists):
		respondError(c, http.StatusConflict, codeConflict, "resource already exists")
	default:
		s.logger.Error("Unhandled service error",
			"path", c.FullPath(), "error", err)
		respondError(c, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
