package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"ai-listener/internal/domain"
	"ai-listener/internal/email"
)

type mockUserRepo struct {
	mu           sync.Mutex
	usersByID    map[string]domain.User
	usersByEmail map[string]string
	createErr    error
	moodErr      error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.usersByID[user.ID] = user
	m.usersByEmail[user.Email] = user.ID
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	id, ok := m.usersByEmail[email]
	m.mu.Unlock()
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(ctx, id)
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.usersByID {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, pgx.ErrNoRows
}

func (m *mockUserRepo) UpdateMood(_ context.Context, id, mood string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.moodErr != nil {
		return m.moodErr
	}
	user, ok := m.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.CurrentMood = mood
	m.usersByID[id] = user
	return nil
}

type mockMessageRepo struct {
	mu        sync.Mutex
	messages  []domain.Message
	createErr error
}

func (m *mockMessageRepo) Create(_ context.Context, msg domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
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
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *mockMessageRepo) DeleteByUserID(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.messages[:0]
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
	mu        sync.Mutex
	entries   []domain.MoodLog
	createErr error
	lastLimit int
}

func (m *mockMoodRepo) Create(_ context.Context, entry domain.MoodLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockMoodRepo) ListByUserID(_ context.Context, userID string, limit int) ([]domain.MoodLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
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
	summary := domain.MoodSummary{Counts: map[string]int{}}
	var sum float64
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		summary.Counts[e.Emotion]++
		summary.Total++
		sum += e.SentimentScore
	}
	if summary.Total > 0 {
		summary.AverageSentiment = sum / float64(summary.Total)
	}
	return summary, nil
}

type mockLimiter struct {
	allow bool
	keys  []string
}

func (m *mockLimiter) Allow(_ context.Context, key string) bool {
	m.keys = append(m.keys, key)
	return m.allow
}

type mockAlertSender struct {
	mu     sync.Mutex
	to     []string
	alerts []email.CrisisAlert
	err    error
	sent   chan struct{}
}

func newMockAlertSender() *mockAlertSender {
	return &mockAlertSender{sent: make(chan struct{}, 8)}
}

func (m *mockAlertSender) SendCrisisAlert(_ context.Context, to string, alert email.CrisisAlert) error {
	m.mu.Lock()
	m.to = append(m.to, to)
	m.alerts = append(m.alerts, alert)
	m.mu.Unlock()
	m.sent <- struct{}{}
	return m.err
}

var errBoom = errors.New("boom")
