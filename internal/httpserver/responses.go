package httpserver

import (
	"errors"
	"net/http"

	"newswire/internal/domain"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"
)

type handlers struct {
	deps   Deps
	logger zerolog.Logger
}

// validatable is implemented by request DTOs carrying ozzo rules.
type validatable interface {
	Validate() error
}

// bindAndValidate decodes the JSON body and runs the DTO's validation rules.
// Both failure modes produce a 400 with field-level detail where available.
func (h *handlers) bindAndValidate(c *gin.Context, req validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return false
	}
	if err := req.Validate(); err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": fields})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// fail maps store errors to responses: ErrNotFound becomes a 404, ErrConflict
// a 409, anything else is logged and answered with an opaque 500.
func (h *handlers) fail(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if errors.Is(err, domain.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("handler error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// boolParam coerces a query-string value into an optional bool. Unparseable
// values are treated as unset rather than rejected.
func boolParam(c *gin.Context, name string) *bool {
	switch c.Query(name) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}
