package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ai-listener/internal/emotion"
)

const (
	MaxBatchSize     = 50
	batchConcurrency = 8
)

var (
	ErrAnalysisNotConfigured = errors.New("analysis service not configured")
	ErrBatchSize             = fmt.Errorf("batch must contain between 1 and %d messages", MaxBatchSize)
)

// AnalysisService expone el pipeline de emociones sin persistir nada.
type AnalysisService struct {
	engine *emotion.Engine
	picker emotion.Picker
	logger *zap.Logger
}

func NewAnalysisService(engine *emotion.Engine, picker emotion.Picker, logger *zap.Logger) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{engine: engine, picker: picker, logger: logger}
}

// Analyze clasifica un mensaje y arma la respuesta. El texto vacío es válido (neutral).
func (s *AnalysisService) Analyze(text string) (emotion.Reply, error) {
	if s == nil || s.engine == nil {
		return emotion.Reply{}, ErrAnalysisNotConfigured
	}
	reply := s.engine.Respond(text, s.picker)
	s.logger.Debug("message analyzed",
		zap.String("emotion", reply.Emotion),
		zap.Float64("confidence", reply.Confidence),
		zap.Bool("is_crisis", reply.IsCrisis),
	)
	return reply, nil
}

// AnalyzeBatch evalúa los mensajes en paralelo y devuelve los resultados en el orden de entrada.
func (s *AnalysisService) AnalyzeBatch(ctx context.Context, texts []string) ([]emotion.Reply, error) {
	if s == nil || s.engine == nil {
		return nil, ErrAnalysisNotConfigured
	}
	if len(texts) == 0 || len(texts) > MaxBatchSize {
		return nil, ErrBatchSize
	}

	out := make([]emotion.Reply, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, text := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = s.engine.Respond(text, s.picker)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	crises := 0
	for _, r := range out {
		if r.IsCrisis {
			crises++
		}
	}
	s.logger.Info("batch analyzed", zap.Int("size", len(out)), zap.Int("crises", crises))
	return out, nil
}
