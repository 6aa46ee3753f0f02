package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/chat"
	chatHTTP "scheduling-assistant/internal/chat/delivery/http"
	"scheduling-assistant/internal/middleware"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/extractor"
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
	processOutput chat.ProcessOutput
	processErr    error
	processInputs []chat.ProcessInput

	resetIDs []string
	resetErr error

	contextOutput model.SessionContext
	contextErr    error
	contextIDs    []string
}

func (m *mockChatUseCase) Process(ctx context.Context, input chat.ProcessInput) (chat.ProcessOutput, error) {
	m.processInputs = append(m.processInputs, input)
	return m.processOutput, m.processErr
}

func (m *mockChatUseCase) Reset(ctx context.Context, sessionID string) error {
	m.resetIDs = append(m.resetIDs, sessionID)
	return m.resetErr
}

func (m *mockChatUseCase) IsComplete(ctx context.Context, sessionID string) bool {
	return m.processOutput.Complete
}

func (m *mockChatUseCase) GetContext(ctx context.Context, sessionID string) (model.SessionContext, error) {
	m.contextIDs = append(m.contextIDs, sessionID)
	return m.contextOutput, m.contextErr
}

func (m *mockChatUseCase) Extract(text string) extractor.Entities {
	return extractor.Entities{}
}

type respEnvelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T, muc *mockChatUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	engine := gin.New()
	h := chatHTTP.New(l, muc)
	mw := middleware.New(l, 0)
	chatHTTP.RegisterRoutes(engine.Group("/api/v1"), h, mw)
	return engine
}

func doJSON(engine *gin.Engine, method, path string, body any, cookie string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestMessage(t *testing.T) {
	muc := &mockChatUseCase{
		processOutput: chat.ProcessOutput{
			Response: "When would you like to have the meeting?",
			Entities: extractor.Entities{"DATE": {"2024-06-12"}},
		},
	}
	engine := newTestRouter(t, muc)

	w := doJSON(engine, http.MethodPost, "/api/v1/chat/message", map[string]string{"message": "tomorrow"}, "sess-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.ErrorCode != 0 {
		t.Fatalf("error_code = %d, want 0", env.ErrorCode)
	}

	var data struct {
		Response string              `json:"response"`
		Entities map[string][]string `json:"entities"`
		Complete bool                `json:"complete"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.Response != "When would you like to have the meeting?" {
		t.Errorf("response = %q", data.Response)
	}
	if got := data.Entities["DATE"]; len(got) != 1 || got[0] != "2024-06-12" {
		t.Errorf("entities DATE = %v", got)
	}

	if len(muc.processInputs) != 1 {
		t.Fatalf("Process called %d times, want 1", len(muc.processInputs))
	}
	if muc.processInputs[0].SessionID != "sess-1" {
		t.Errorf("session id = %q, want sess-1", muc.processInputs[0].SessionID)
	}
}

func TestMessageIssuesSessionCookie(t *testing.T) {
	muc := &mockChatUseCase{processOutput: chat.ProcessOutput{Response: "ok"}}
	engine := newTestRouter(t, muc)

	w := doJSON(engine, http.MethodPost, "/api/v1/chat/message", map[string]string{"message": "hi"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, middleware.SessionCookie+"=") {
		t.Fatalf("no session cookie issued, got %q", cookie)
	}
	if len(muc.processInputs) != 1 || muc.processInputs[0].SessionID == "" {
		t.Errorf("Process should receive the freshly issued session id")
	}
}

func TestMessageMissingBody(t *testing.T) {
	muc := &mockChatUseCase{}
	engine := newTestRouter(t, muc)

	w := doJSON(engine, http.MethodPost, "/api/v1/chat/message", map[string]string{}, "sess-1")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(muc.processInputs) != 0 {
		t.Errorf("Process should not be called on a bind failure")
	}
}

func TestMessageWhitespaceOnly(t *testing.T) {
	muc := &mockChatUseCase{processErr: chat.ErrEmptyMessage}
	engine := newTestRouter(t, muc)

	w := doJSON(engine, http.MethodPost, "/api/v1/chat/message", map[string]string{"message": "   "}, "sess-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var data struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.Response != "Please enter a message." {
		t.Errorf("response = %q", data.Response)
	}
}

func TestReset(t *testing.T) {
	muc := &mockChatUseCase{}
	engine := newTestRouter(t, muc)

	w := doJSON(engine, http.MethodPost, "/api/v1/chat/reset", nil, "old-session")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var data struct {
		Response string `json:"response"`
		Complete bool   `json:"complete"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.Response != "Chat session has been reset. How can I help you schedule something?" {
		t.Errorf("response = %q", data.Response)
	}
	if data.Complete {
		t.Errorf("complete should be false after reset")
	}

	if len(muc.resetIDs) != 1 {
		t.Fatalf("Reset called %d times, want 1", len(muc.resetIDs))
	}
	if muc.resetIDs[0] == "old-session" || muc.resetIDs[0] == "" {
		t.Errorf("reset should target a freshly rotated session, got %q", muc.resetIDs[0])
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), middleware.SessionCookie+"=") {
		t.Errorf("reset should issue a new session cookie")
	}
}

func TestContext(t *testing.T) {
	sc := model.NewSessionContext([]string{"DATE", "TIME", "DURATION", "ATTENDEE"})
	sc.Slots["DATE"] = []string{"2024-06-12"}
	sc.Slots["ATTENDEE"] = []string{"John Smith (john.smith@example.com)"}
	sc.AttendeeEmails["John Smith (john.smith@example.com)"] = "john.smith@example.com"

	muc := &mockChatUseCase{contextOutput: sc}
	engine := newTestRouter(t, muc)

	w := doJSON(engine, http.MethodGet, "/api/v1/chat/context", nil, "sess-ctx")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var data struct {
		Slots    map[string][]string `json:"slots"`
		Complete bool                `json:"complete"`
		Mode     string              `json:"mode"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if got := data.Slots["DATE"]; len(got) != 1 || got[0] != "2024-06-12" {
		t.Errorf("DATE slot = %v", got)
	}
	if data.Mode != string(model.ModeNormal) {
		t.Errorf("mode = %q", data.Mode)
	}

	if len(muc.contextIDs) != 1 || muc.contextIDs[0] != "sess-ctx" {
		t.Errorf("GetContext ids = %v", muc.contextIDs)
	}
}

func TestExport(t *testing.T) {
	muc := &mockChatUseCase{
		contextOutput: model.NewSessionContext([]string{"DATE", "TIME", "DURATION", "ATTENDEE"}),
	}
	engine := newTestRouter(t, muc)

	w := doJSON(engine, http.MethodGet, "/api/v1/chat/export", nil, "sess-exp")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var data struct {
		SessionID string `json:"session_id"`
		Context   struct {
			Slots map[string][]string `json:"slots"`
		} `json:"context"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.SessionID != "sess-exp" {
		t.Errorf("session_id = %q, want sess-exp", data.SessionID)
	}
	if _, ok := data.Context.Slots["ATTENDEE"]; !ok {
		t.Errorf("exported context missing ATTENDEE slot: %v", data.Context.Slots)
	}
}
