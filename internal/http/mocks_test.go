package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"ai-listener/internal/domain"
	"ai-listener/internal/emotion"
	"ai-listener/internal/service"
)

type mockUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) find(match func(domain.User) bool) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}
	return domain.User{}, pgx.ErrNoRows
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	return m.find(func(u domain.User) bool { return u.ID == id })
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	return m.find(func(u domain.User) bool { return u.Email == email })
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	return m.find(func(u domain.User) bool { return u.Username == username })
}

func (m *mockUserRepo) UpdateMood(_ context.Context, id, mood string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.CurrentMood = mood
	m.users[id] = u
	return nil
}

type mockMessageRepo struct {
	mu       sync.Mutex
	messages []domain.Message
}

func (m *mockMessageRepo) Create(_ context.Context, msg domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockMessageRepo) ListRecentByUserID(_ context.Context, userID string, limit int) ([]domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Message
	for _, msg := range m.messages {
		if msg.UserID == userID {
			out = append(out, msg)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *mockMessageRepo) DeleteByUserID(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []domain.Message
	var n int64
	for _, msg := range m.messages {
		if msg.UserID == userID {
			n++
			continue
		}
		kept = append(kept, msg)
	}
	m.messages = kept
	return n, nil
}

type mockMoodRepo struct {
	mu      sync.Mutex
	entries []domain.MoodLog
}

func (m *mockMoodRepo) Create(_ context.Context, entry domain.MoodLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockMoodRepo) ListByUserID(_ context.Context, userID string, limit int) ([]domain.MoodLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.MoodLog
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if m.entries[i].UserID == userID {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

func (m *mockMoodRepo) Summary(_ context.Context, userID string) (domain.MoodSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := domain.MoodSummary{Counts: map[string]int{}}
	var sum float64
	for _, e := range m.entries {
		if e.UserID == userID {
			s.Counts[e.Emotion]++
			s.Total++
			sum += e.SentimentScore
		}
	}
	if s.Total > 0 {
		s.AverageSentiment = sum / float64(s.Total)
	}
	return s, nil
}

type denyLimiter struct{}

func (denyLimiter) Allow(context.Context, string) bool { return false }

type testServer struct {
	router   *gin.Engine
	jwt      *service.JWTService
	users    *mockUserRepo
	messages *mockMessageRepo
	moods    *mockMoodRepo
}

func newTestServer(t *testing.T, limiter service.MessageRateLimiter) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	ts := &testServer{
		jwt:      service.NewJWTServiceWithStore("secret", 15*time.Minute, 30*time.Minute, service.NewMemoryRefreshTokenStore()),
		users:    newMockUserRepo(),
		messages: &mockMessageRepo{},
		moods:    &mockMoodRepo{},
	}
	engine := emotion.NewEngine(nil)
	picker := emotion.NewSeededPicker(42)

	userSvc := service.NewUserService(logger, ts.users)
	chatSvc := service.NewChatService(logger, engine, picker, ts.users, ts.messages, ts.moods, limiter, nil)
	moodSvc := service.NewMoodService(logger, ts.moods, engine.Lexicon())
	analysisSvc := service.NewAnalysisService(engine, picker, logger)
	extrasSvc := service.NewExtrasService(picker)

	ts.router = NewRouter(logger, []string{"http://localhost:5173"}, ts.jwt,
		NewUserHandler(logger, userSvc, ts.jwt),
		NewChatHandler(logger, chatSvc),
		NewMoodHandler(logger, moodSvc),
		NewAnalyzeHandler(logger, analysisSvc),
		NewExtrasHandler(logger, extrasSvc),
	)
	return ts
}

// login registra un usuario y devuelve su access token.
func (ts *testServer) login(t *testing.T, email string) (string, string) {
	t.Helper()
	rec := performRequest(ts.router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		User   domain.User       `json:"user"`
		Tokens service.TokenPair `json:"tokens"`
	}
	decodeBody(t, rec, &resp)
	return resp.User.ID, resp.Tokens.AccessToken
}

func performRequest(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}
