package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/chat"
	"scheduling-assistant/internal/chat/delivery/telegram"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/extractor"
	pkgTelegram "scheduling-assistant/pkg/telegram"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockChatUseCase struct {
	mu            sync.Mutex
	processOutput chat.ProcessOutput
	processErr    error
	processInputs []chat.ProcessInput
	resetIDs      []string
}

func (m *mockChatUseCase) Process(ctx context.Context, input chat.ProcessInput) (chat.ProcessOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processInputs = append(m.processInputs, input)
	return m.processOutput, m.processErr
}

func (m *mockChatUseCase) Reset(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetIDs = append(m.resetIDs, sessionID)
	return nil
}

func (m *mockChatUseCase) IsComplete(ctx context.Context, sessionID string) bool { return false }

func (m *mockChatUseCase) GetContext(ctx context.Context, sessionID string) (model.SessionContext, error) {
	return model.SessionContext{}, nil
}

func (m *mockChatUseCase) Extract(text string) extractor.Entities { return extractor.Entities{} }

func (m *mockChatUseCase) inputs() []chat.ProcessInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]chat.ProcessInput(nil), m.processInputs...)
}

type capturedMessages struct {
	mu    sync.Mutex
	texts []string
}

func (cm *capturedMessages) add(text string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.texts = append(cm.texts, text)
}

func (cm *capturedMessages) snapshot() []string {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return append([]string(nil), cm.texts...)
}

func newTestEnv(t *testing.T, muc *mockChatUseCase) (*gin.Engine, *capturedMessages) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	captured := &capturedMessages{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				captured.add(text)
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	engine := gin.New()
	h := telegram.New(&mockLogger{}, muc, bot)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return engine, captured
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForMessages(cm *capturedMessages, atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if msgs := cm.snapshot(); len(msgs) >= atLeast {
			return msgs
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cm.snapshot()
}

func TestHandleWebhookRespondsImmediately(t *testing.T) {
	muc := &mockChatUseCase{
		processOutput: chat.ProcessOutput{Response: "When would you like to have the meeting?"},
	}
	engine, captured := newTestEnv(t, muc)

	w := sendWebhook(engine, "schedule a meeting with John")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "accepted") {
		t.Errorf("body = %q, want accepted status", w.Body.String())
	}

	msgs := waitForMessages(captured, 1, 2*time.Second)
	if len(msgs) != 1 || msgs[0] != "When would you like to have the meeting?" {
		t.Errorf("sent messages = %v", msgs)
	}

	inputs := muc.inputs()
	if len(inputs) != 1 {
		t.Fatalf("Process called %d times, want 1", len(inputs))
	}
	if inputs[0].SessionID != "telegram_123" {
		t.Errorf("session id = %q, want telegram_123", inputs[0].SessionID)
	}
}

func TestHandleWebhookIgnoresNonMessageUpdates(t *testing.T) {
	muc := &mockChatUseCase{}
	engine, captured := newTestEnv(t, muc)

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 2})
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("body = %q, want ignored status", w.Body.String())
	}
	if msgs := waitForMessages(captured, 1, 100*time.Millisecond); len(msgs) != 0 {
		t.Errorf("no messages should be sent, got %v", msgs)
	}
}

func TestHandleWebhookStartCommand(t *testing.T) {
	muc := &mockChatUseCase{}
	engine, captured := newTestEnv(t, muc)

	sendWebhook(engine, "/start")

	msgs := waitForMessages(captured, 1, 2*time.Second)
	if len(msgs) != 1 || !strings.Contains(msgs[0], "Scheduling Assistant") {
		t.Errorf("sent messages = %v", msgs)
	}
	if len(muc.inputs()) != 0 {
		t.Errorf("built-in commands should not reach the engine")
	}
}

func TestHandleWebhookResetCommand(t *testing.T) {
	muc := &mockChatUseCase{}
	engine, captured := newTestEnv(t, muc)

	sendWebhook(engine, "/reset")

	msgs := waitForMessages(captured, 1, 2*time.Second)
	if len(msgs) != 1 || !strings.Contains(msgs[0], "has been reset") {
		t.Errorf("sent messages = %v", msgs)
	}

	muc.mu.Lock()
	resetIDs := append([]string(nil), muc.resetIDs...)
	muc.mu.Unlock()
	if len(resetIDs) != 1 || resetIDs[0] != "telegram_123" {
		t.Errorf("reset ids = %v", resetIDs)
	}
}

func TestHandleWebhookProcessFailure(t *testing.T) {
	muc := &mockChatUseCase{processErr: context.DeadlineExceeded}
	engine, captured := newTestEnv(t, muc)

	sendWebhook(engine, "schedule something")

	msgs := waitForMessages(captured, 1, 2*time.Second)
	if len(msgs) != 1 || !strings.Contains(msgs[0], "couldn't process") {
		t.Errorf("sent messages = %v", msgs)
	}
}
