package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ai-listener/internal/domain"
	"ai-listener/internal/emotion"
	"ai-listener/internal/repository"
)

const (
	defaultMoodIntensity   = 0.5
	defaultMoodHistorySize = 30
	maxMoodHistorySize     = 200
	maxMoodLabelLength     = 50
)

var (
	ErrMoodServiceNotConfigured = errors.New("mood service not configured")
	ErrMoodInvalidEmotion       = errors.New("emotion is required")
	ErrMoodInvalidIntensity     = errors.New("intensity must be between 0 and 1")
)

type MoodInput struct {
	Emotion   string
	Intensity *float64
	Note      string
}

// MoodService registra entradas manuales de ánimo y resume el historial.
type MoodService struct {
	logger *zap.Logger
	moods  repository.MoodRepository
	lex    *emotion.Lexicon
}

func NewMoodService(logger *zap.Logger, moods repository.MoodRepository, lex *emotion.Lexicon) *MoodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if lex == nil {
		lex = emotion.DefaultLexicon()
	}
	return &MoodService{logger: logger, moods: moods, lex: lex}
}

func (s *MoodService) Log(ctx context.Context, userID string, in MoodInput) (domain.MoodLog, error) {
	if s == nil || s.moods == nil {
		return domain.MoodLog{}, ErrMoodServiceNotConfigured
	}
	label := strings.ToLower(strings.TrimSpace(in.Emotion))
	if label == "" || len(label) > maxMoodLabelLength {
		return domain.MoodLog{}, ErrMoodInvalidEmotion
	}
	intensity := defaultMoodIntensity
	if in.Intensity != nil {
		intensity = *in.Intensity
	}
	if math.IsNaN(intensity) || intensity < 0 || intensity > 1 {
		return domain.MoodLog{}, ErrMoodInvalidIntensity
	}

	entry := domain.MoodLog{
		ID:             uuid.NewString(),
		UserID:         userID,
		Emotion:        label,
		Intensity:      intensity,
		SentimentScore: s.lex.Sentiment(label),
		Note:           strings.TrimSpace(in.Note),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.moods.Create(ctx, entry); err != nil {
		return domain.MoodLog{}, err
	}
	s.logger.Info("mood logged", zap.String("user_id", userID), zap.String("emotion", label))
	return entry, nil
}

// History devuelve las entradas más recientes primero.
func (s *MoodService) History(ctx context.Context, userID string, limit int) ([]domain.MoodLog, error) {
	if s == nil || s.moods == nil {
		return nil, ErrMoodServiceNotConfigured
	}
	return s.moods.ListByUserID(ctx, userID, clampLimit(limit, defaultMoodHistorySize, maxMoodHistorySize))
}

// Summary agrega conteos por emoción. En empate, la emoción dominante es la
// primera en orden alfabético.
func (s *MoodService) Summary(ctx context.Context, userID string) (domain.MoodSummary, error) {
	if s == nil || s.moods == nil {
		return domain.MoodSummary{}, ErrMoodServiceNotConfigured
	}
	summary, err := s.moods.Summary(ctx, userID)
	if err != nil {
		return domain.MoodSummary{}, err
	}
	if summary.Counts == nil {
		summary.Counts = map[string]int{}
	}
	best := 0
	for label, n := range summary.Counts {
		if n > best || (n == best && label < summary.Dominant) {
			summary.Dominant, best = label, n
		}
	}
	summary.AverageSentiment = math.Round(summary.AverageSentiment*100) / 100
	return summary, nil
}
