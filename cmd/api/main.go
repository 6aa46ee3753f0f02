package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scheduling-assistant/config"
	_ "scheduling-assistant/docs" // Swagger docs
	tgDelivery "scheduling-assistant/internal/chat/delivery/telegram"
	chatMemory "scheduling-assistant/internal/chat/repository/memory"
	chatUC "scheduling-assistant/internal/chat/usecase"
	contactSqlite "scheduling-assistant/internal/contact/repository/sqlite"
	contactUC "scheduling-assistant/internal/contact/usecase"
	"scheduling-assistant/internal/httpserver"
	meetingSqlite "scheduling-assistant/internal/meeting/repository/sqlite"
	meetingUC "scheduling-assistant/internal/meeting/usecase"
	"scheduling-assistant/pkg/datemath"
	"scheduling-assistant/pkg/extractor"
	"scheduling-assistant/pkg/gcalendar"
	"scheduling-assistant/pkg/log"
	"scheduling-assistant/pkg/telegram"
)

// @title       Scheduling Assistant API
// @description Conversational meeting scheduling with entity extraction, contact disambiguation, and Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Scheduling Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date parsing (relative dates resolve against the configured timezone)
	dateMathParser, dtErr := datemath.NewParser(cfg.Chat.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Chat.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Contact directory (SQLite)
	contactDB, err := contactSqlite.Open(cfg.Contacts.DBPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to open contacts database: %v", err)
		return
	}
	defer contactDB.Close()

	contactRepo := contactSqlite.New(contactDB, logger)
	contactUseCase := contactUC.New(contactRepo, logger)

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Meetings store + scheduler
	meetingDB, err := meetingSqlite.Open(cfg.Meetings.DBPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to open meetings database: %v", err)
		return
	}
	defer meetingDB.Close()

	meetingRepo := meetingSqlite.New(meetingDB, logger)
	meetingUseCase := meetingUC.New(logger, calendarClient, meetingRepo, cfg.Chat.Timezone, cfg.GoogleCalendar.CalendarID)

	// 7. Conversation engine
	entityExtractor := extractor.New(logger, dateMathParser, time.Now)
	sessionTTL := time.Duration(cfg.Chat.SessionTTLMinutes) * time.Minute
	contextRepo := chatMemory.New(logger, sessionTTL)
	chatUseCase := chatUC.New(logger, entityExtractor, contactUseCase, meetingUseCase, contextRepo)

	// 8. Telegram surface (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUseCase, telegramBot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram bot token not configured, webhook surface disabled")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
		ChatUseCase:     chatUseCase,
		ContactUseCase:  contactUseCase,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
