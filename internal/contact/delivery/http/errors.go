package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/contact"
	"scheduling-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses; anything
// unrecognized is an internal error.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, contact.ErrContactNotFound):
		c.JSON(http.StatusNotFound, response.Resp{ErrorCode: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, contact.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, response.Resp{ErrorCode: http.StatusConflict, Message: err.Error()})
	case errors.Is(err, contact.ErrInvalidPayload):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
