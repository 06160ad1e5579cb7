package http

import (
	"net/http"
	"strings"
	"testing"

	"ai-listener/internal/domain"
	"ai-listener/internal/service"
)

func TestChatHandlerSend(t *testing.T) {
	ts := newTestServer(t, nil)
	userID, token := ts.login(t, "sam@example.com")

	rec := performRequest(ts.router, http.MethodPost, "/api/chat/send", token, map[string]string{
		"message": "my girlfriend broke up with me",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp service.ChatResult
	decodeBody(t, rec, &resp)
	if resp.UserMessage.EmotionDetected != "heartbreak" || resp.AIResponse.Emotion != "heartbreak" {
		t.Fatalf("expected heartbreak, got %+v", resp)
	}
	if resp.AIResponse.Content == "" || resp.AIResponse.CopingTip == "" || resp.AIResponse.IsCrisis {
		t.Fatalf("unexpected ai response %+v", resp.AIResponse)
	}
	if len(ts.messages.messages) != 2 || len(ts.moods.entries) != 1 {
		t.Fatalf("expected persisted turn and mood entry")
	}
	user, _ := ts.users.GetByID(t.Context(), userID)
	if user.CurrentMood != "heartbreak" {
		t.Fatalf("expected current mood heartbreak, got %q", user.CurrentMood)
	}
}

func TestChatHandlerSend_Errors(t *testing.T) {
	ts := newTestServer(t, nil)
	_, token := ts.login(t, "sam@example.com")

	tests := []struct {
		name  string
		token string
		body  any
		want  int
	}{
		{name: "no token", token: "", body: map[string]string{"message": "hi"}, want: http.StatusUnauthorized},
		{name: "empty message", token: token, body: map[string]string{"message": "   "}, want: http.StatusBadRequest},
		{name: "too long", token: token, body: map[string]string{"message": strings.Repeat("a", 5001)}, want: http.StatusBadRequest},
		{name: "bad json", token: token, body: []int{1}, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performRequest(ts.router, http.MethodPost, "/api/chat/send", tt.token, tt.body)
			if rec.Code != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestChatHandlerSend_RateLimited(t *testing.T) {
	ts := newTestServer(t, denyLimiter{})
	_, token := ts.login(t, "sam@example.com")

	rec := performRequest(ts.router, http.MethodPost, "/api/chat/send", token, map[string]string{"message": "hello"})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}
}

func TestChatHandlerHistoryAndClear(t *testing.T) {
	ts := newTestServer(t, nil)
	_, token := ts.login(t, "sam@example.com")
	_, other := ts.login(t, "kim@example.com")

	for _, msg := range []string{"hello", "I am so tired"} {
		if rec := performRequest(ts.router, http.MethodPost, "/api/chat/send", token, map[string]string{"message": msg}); rec.Code != http.StatusCreated {
			t.Fatalf("send: expected 201, got %d", rec.Code)
		}
	}
	performRequest(ts.router, http.MethodPost, "/api/chat/send", other, map[string]string{"message": "hi"})

	rec := performRequest(ts.router, http.MethodGet, "/api/chat/history?limit=3", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var history struct {
		Messages []domain.Message `json:"messages"`
	}
	decodeBody(t, rec, &history)
	if len(history.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(history.Messages))
	}
	if history.Messages[1].Content != "I am so tired" || !history.Messages[2].IsAIResponse {
		t.Fatalf("expected chronological order, got %+v", history.Messages)
	}

	rec = performRequest(ts.router, http.MethodDelete, "/api/chat/history", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	rec = performRequest(ts.router, http.MethodGet, "/api/chat/history", token, nil)
	decodeBody(t, rec, &history)
	if len(history.Messages) != 0 {
		t.Fatalf("expected empty history, got %d", len(history.Messages))
	}
	if len(ts.messages.messages) != 2 {
		t.Fatalf("expected other user's messages kept, got %d", len(ts.messages.messages))
	}
}
