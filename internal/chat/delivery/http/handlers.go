package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/chat"
	"scheduling-assistant/internal/middleware"
	"scheduling-assistant/pkg/response"
)

// Message godoc
// @Summary     Send a chat message
// @Description Processes one conversational turn and returns the assistant reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "User message"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/message [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sessionID := middleware.SessionID(c)
	output, err := h.uc.Process(ctx, chat.ProcessInput{
		SessionID: sessionID,
		Message:   req.Message,
	})
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			response.OK(c, messageResp{
				Response: "Please enter a message.",
				Entities: map[string][]string{},
			})
			return
		}
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newMessageResp(output))
}

// Reset godoc
// @Summary     Reset the chat session
// @Description Discards the current conversation and issues a fresh session.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} messageResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	// Fresh cookie plus a clean context, so stale disambiguation state can
	// never leak into the next conversation.
	sessionID := middleware.RotateSession(c)
	if err := h.uc.Reset(ctx, sessionID); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, messageResp{
		Response: "Chat session has been reset. How can I help you schedule something?",
		Entities: map[string][]string{},
	})
}

// Context godoc
// @Summary     Get session context
// @Description Returns the accumulated slot state of the current session.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} contextResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/context [GET]
func (h *handler) Context(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := middleware.SessionID(c)
	sc, err := h.uc.GetContext(ctx, sessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetContext: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newContextResp(sc))
}

// Export godoc
// @Summary     Export session data
// @Description Returns the session id and its context as a JSON document.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} exportResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := middleware.SessionID(c)
	sc, err := h.uc.GetContext(ctx, sessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetContext: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, exportResp{
		SessionID: sessionID,
		Context:   h.newContextResp(sc),
	})
}
