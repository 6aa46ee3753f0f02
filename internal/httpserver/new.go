package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/chat"
	tgDelivery "scheduling-assistant/internal/chat/delivery/telegram"
	"scheduling-assistant/internal/contact"
	"scheduling-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Per-session throttle for the chat surface
	rateLimitPerMin int

	// Domains
	chatUC    chat.UseCase
	contactUC contact.UseCase

	// Telegram webhook (optional)
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RateLimitPerMin int

	ChatUseCase    chat.UseCase
	ContactUseCase contact.UseCase

	// TelegramHandler is nil when no bot token is configured.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		chatUC:          cfg.ChatUseCase,
		contactUC:       cfg.ContactUseCase,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.contactUC == nil {
		return errors.New("contact usecase is required")
	}
	return nil
}
