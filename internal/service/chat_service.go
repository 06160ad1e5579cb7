package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ai-listener/internal/domain"
	"ai-listener/internal/email"
	"ai-listener/internal/emotion"
	"ai-listener/internal/repository"
)

const (
	maxMessageLength   = 5000
	defaultHistorySize = 50
	maxHistorySize     = 200
)

var (
	ErrChatServiceNotConfigured = errors.New("chat service not configured")
	ErrChatInvalidInput         = errors.New("message must not be empty")
	ErrChatMessageTooLong       = fmt.Errorf("message exceeds %d characters", maxMessageLength)
	ErrRateLimited              = errors.New("rate limited")
)

// AIResponse es la respuesta generada que ve el usuario.
type AIResponse struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	Emotion        string    `json:"emotion"`
	Confidence     float64   `json:"confidence"`
	SentimentScore float64   `json:"sentiment_score"`
	CopingTip      string    `json:"coping_tip"`
	IsCrisis       bool      `json:"is_crisis"`
	CreatedAt      time.Time `json:"created_at"`
}

type ChatResult struct {
	UserMessage domain.Message `json:"user_message"`
	AIResponse  AIResponse     `json:"ai_response"`
}

// ChatService orquesta un turno de chat: clasificación, persistencia y registro de ánimo.
type ChatService struct {
	logger   *zap.Logger
	engine   *emotion.Engine
	picker   emotion.Picker
	users    repository.UserRepository
	messages repository.MessageRepository
	moods    repository.MoodRepository
	limiter  MessageRateLimiter
	alerter  *SafetyAlerter
	now      func() time.Time
}

func NewChatService(
	logger *zap.Logger,
	engine *emotion.Engine,
	picker emotion.Picker,
	users repository.UserRepository,
	messages repository.MessageRepository,
	moods repository.MoodRepository,
	limiter MessageRateLimiter,
	alerter *SafetyAlerter,
) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		logger:   logger,
		engine:   engine,
		picker:   picker,
		users:    users,
		messages: messages,
		moods:    moods,
		limiter:  limiter,
		alerter:  alerter,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Send procesa un mensaje del usuario. El mensaje del usuario se persiste antes
// que la respuesta; el registro de ánimo es best-effort.
func (s *ChatService) Send(ctx context.Context, userID, text string) (ChatResult, error) {
	if s == nil || s.engine == nil || s.messages == nil {
		return ChatResult{}, ErrChatServiceNotConfigured
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ChatResult{}, ErrChatInvalidInput
	}
	if utf8.RuneCountInString(text) > maxMessageLength {
		return ChatResult{}, ErrChatMessageTooLong
	}
	if s.limiter != nil && !s.limiter.Allow(ctx, userID) {
		return ChatResult{}, ErrRateLimited
	}

	analysis := s.engine.Analyze(text, s.picker)
	reply := analysis.Reply
	now := s.now()
	score := reply.SentimentScore

	userMsg := domain.Message{
		ID:              uuid.NewString(),
		UserID:          userID,
		Content:         text,
		EmotionDetected: reply.Emotion,
		SentimentScore:  &score,
		CreatedAt:       now,
	}
	if err := s.messages.Create(ctx, userMsg); err != nil {
		return ChatResult{}, fmt.Errorf("persist user message: %w", err)
	}

	aiMsg := domain.Message{
		ID:           uuid.NewString(),
		UserID:       userID,
		Content:      reply.Response,
		IsAIResponse: true,
		CreatedAt:    now.Add(time.Millisecond),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.messages.Create(gctx, aiMsg); err != nil {
			return fmt.Errorf("persist ai message: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		s.recordMood(gctx, userID, reply, now)
		return nil
	})
	if err := g.Wait(); err != nil {
		return ChatResult{}, err
	}

	if reply.IsCrisis {
		s.logger.Warn("crisis detected", zap.String("user_id", userID))
		s.raiseAlert(userID, now)
	}
	s.logger.Info("chat reply",
		zap.String("user_id", userID),
		zap.String("emotion", reply.Emotion),
		zap.Float64("confidence", reply.Confidence),
		zap.String("topic", analysis.Topic.Key()),
	)

	return ChatResult{
		UserMessage: userMsg,
		AIResponse: AIResponse{
			ID:             aiMsg.ID,
			Content:        reply.Response,
			Emotion:        reply.Emotion,
			Confidence:     reply.Confidence,
			SentimentScore: reply.SentimentScore,
			CopingTip:      reply.CopingTip,
			IsCrisis:       reply.IsCrisis,
			CreatedAt:      aiMsg.CreatedAt,
		},
	}, nil
}

func (s *ChatService) recordMood(ctx context.Context, userID string, reply emotion.Reply, at time.Time) {
	if s.moods != nil {
		entry := domain.MoodLog{
			ID:             uuid.NewString(),
			UserID:         userID,
			Emotion:        reply.Emotion,
			Intensity:      reply.Confidence,
			SentimentScore: reply.SentimentScore,
			CreatedAt:      at,
		}
		if err := s.moods.Create(ctx, entry); err != nil {
			s.logger.Warn("mood log failed", zap.Error(err), zap.String("user_id", userID))
		}
	}
	if s.users != nil {
		if err := s.users.UpdateMood(ctx, userID, reply.Emotion); err != nil {
			s.logger.Warn("update current mood failed", zap.Error(err), zap.String("user_id", userID))
		}
	}
}

// raiseAlert corre en segundo plano para no demorar la respuesta.
func (s *ChatService) raiseAlert(userID string, at time.Time) {
	if s.alerter == nil {
		return
	}
	alert := email.CrisisAlert{UserID: userID, DetectedAt: at}
	if s.users != nil {
		if u, err := s.users.GetByID(context.Background(), userID); err == nil {
			alert.Username = u.Username
		}
	}
	go s.alerter.Notify(context.Background(), alert)
}

// History devuelve los últimos mensajes en orden cronológico.
func (s *ChatService) History(ctx context.Context, userID string, limit int) ([]domain.Message, error) {
	if s == nil || s.messages == nil {
		return nil, ErrChatServiceNotConfigured
	}
	return s.messages.ListRecentByUserID(ctx, userID, clampLimit(limit, defaultHistorySize, maxHistorySize))
}

func (s *ChatService) ClearHistory(ctx context.Context, userID string) (int64, error) {
	if s == nil || s.messages == nil {
		return 0, ErrChatServiceNotConfigured
	}
	n, err := s.messages.DeleteByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.logger.Info("chat history cleared", zap.String("user_id", userID), zap.Int64("deleted", n))
	return n, nil
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
