package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "scheduling-assistant/internal/chat/delivery/http"
	contactHTTP "scheduling-assistant/internal/contact/delivery/http"
	"scheduling-assistant/internal/middleware"
)

// setupChatDomain registers the conversational endpoints under /api/v1/chat.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
}

// setupContactDomain registers the directory CRUD under /api/v1/contacts.
func (srv HTTPServer) setupContactDomain(ctx context.Context, api *gin.RouterGroup) {
	h := contactHTTP.New(srv.l, srv.contactUC)
	contactHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Contact domain registered")
}
