package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/contact"
)

// processCreateReq binds and validates the create contact request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update contact body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, req.validate()
}

// processIDParam parses the numeric contact id from the URI.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, contact.ErrInvalidPayload
	}
	return id, nil
}
