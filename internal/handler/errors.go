package handler

import (
	"errors"
	"net/http"

	"jokipro/internal/logger"
	"jokipro/internal/service"

	"github.com/gin-gonic/gin"
)

// fail maps a service error onto a JSON error response.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateClient):
		status = http.StatusConflict
	case errors.Is(err, service.ErrWrongPassword):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrInvalidAmount):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		logger.Error("request.failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
