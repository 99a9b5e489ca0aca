package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"
	"photo-portfolio-backend/internal/models"
)

// statusFor maps the model sentinel errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error, msg string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		klog.Errorf("%s %s: %s: %v", c.Request.Method, c.Request.URL.Path, msg, err)
	}
	c.JSON(status, models.ErrorResponse{
		Error:   msg,
		Message: err.Error(),
	})
}

func badRequest(c *gin.Context, msg, detail string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msg, Message: detail})
}

// queryInt reads an optional non-negative integer query parameter.
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		badRequest(c, "invalid "+name, name+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}

func queryBool(c *gin.Context, name string, def bool) (bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		badRequest(c, "invalid "+name, name+" must be true or false")
		return false, false
	}
	return b, true
}
