// Package controller holds the helpers shared by the HTTP controllers.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/service"
	"github.com/rs/zerolog/log"
)

// RespondError writes the status matching a service error. Unknown errors
// are logged and reported as a generic 500.
func RespondError(c *gin.Context, err error, action string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, f.Field+": "+f.Error)
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid input", Details: details})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotEligible):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrAssistantUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg(action + ": Service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to " + action})
	}
}

// BindJSON binds the request body and answers 400 on failure.
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return false
	}
	return true
}

// UintParam parses a numeric path parameter and answers 400 on failure.
func UintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(v), true
}
