package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/chat"
	pkgLog "scheduling-assistant/pkg/log"
	pkgResponse "scheduling-assistant/pkg/response"
	pkgTelegram "scheduling-assistant/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so slow turns (calendar calls can take seconds)
// never trip the Telegram webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which gets cancelled after response
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong while handling your message. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	sessionID := fmt.Sprintf("telegram_%d", msg.Chat.ID)

	// ---- Built-in commands ----
	switch msg.Text {
	case "/start":
		if err := h.uc.Reset(ctx, sessionID); err != nil {
			h.l.Warnf(ctx, "telegram handler: reset on /start failed: %v", err)
		}
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"👋 Welcome to the *Scheduling Assistant*!\n\nTell me about the meeting you want to set up and I will collect the date, time, duration and attendees, then put it on the calendar.\n\n_Example: \"Schedule a meeting with John Smith tomorrow at 3pm for 1 hour\"_",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"*How to use:*\n\nDescribe the meeting in plain language, for example:\n`Book a call with Alice on Friday at 10am for 30 minutes`\n\nYou can give the details across several messages; I will ask for whatever is still missing. Send /reset to start over.",
			"Markdown",
		)
	case "/reset":
		if err := h.uc.Reset(ctx, sessionID); err != nil {
			return err
		}
		return h.bot.SendMessage(msg.Chat.ID, "Chat session has been reset. How can I help you schedule something?")
	}

	output, err := h.uc.Process(ctx, chat.ProcessInput{
		SessionID: sessionID,
		Message:   msg.Text,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Process failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, "I couldn't process that message. Please try again.")
	}

	return h.bot.SendMessage(msg.Chat.ID, output.Response)
}
