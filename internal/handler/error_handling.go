package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lorewright/internal/model"
)

// handleServiceError maps service-layer errors onto the {error, status_code}
// body every endpoint shares.
func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, model.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case errors.Is(err, model.ErrUserNotFound):
		statusCode = http.StatusNotFound
		message = "User not found"
	case errors.Is(err, model.ErrUserAlreadyExists):
		statusCode = http.StatusBadRequest
		message = "User already exists"
	case errors.Is(err, model.ErrEmailAlreadyExists):
		statusCode = http.StatusBadRequest
		message = "Email already exists"
	case errors.Is(err, model.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = "Invalid username or password"
	case errors.Is(err, model.ErrTokenInvalid), errors.Is(err, model.ErrTokenMalformed), errors.Is(err, model.ErrTokenNotFound):
		statusCode = http.StatusUnauthorized
		message = "Token is invalid or malformed"
	case errors.Is(err, model.ErrTokenExpired):
		statusCode = http.StatusUnauthorized
		message = "Token has expired"
	case errors.Is(err, model.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, model.ErrNoProviderCredential):
		statusCode = http.StatusServiceUnavailable
		message = err.Error()
	case errors.Is(err, model.ErrGenerationFailed):
		zap.L().Error("Content generation failed", zap.Error(err))
		statusCode = http.StatusInternalServerError
		message = "Content generation failed"
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal error occurred"
	}

	c.AbortWithStatusJSON(statusCode, model.ErrorResponse{Error: message, StatusCode: statusCode})
}

// badRequest reports a request parsing or validation failure.
func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
		Error:      message,
		StatusCode: http.StatusBadRequest,
	})
}
