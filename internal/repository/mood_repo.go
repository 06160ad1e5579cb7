package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"ai-listener/internal/domain"
)

type MoodRepository interface {
	Create(ctx context.Context, entry domain.MoodLog) error
	ListByUserID(ctx context.Context, userID string, limit int) ([]domain.MoodLog, error)
	Summary(ctx context.Context, userID string) (domain.MoodSummary, error)
}

type PgMoodRepository struct {
	pool *pgxpool.Pool
}

func NewPgMoodRepository(pool *pgxpool.Pool) *PgMoodRepository {
	return &PgMoodRepository{pool: pool}
}

func (r *PgMoodRepository) Create(ctx context.Context, entry domain.MoodLog) error {
	const query = `
		INSERT INTO mood_logs (id, user_id, emotion, intensity, sentiment_score, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Emotion,
		entry.Intensity,
		entry.SentimentScore,
		entry.Note,
		entry.CreatedAt,
	)
	return err
}

// ListByUserID devuelve las entradas más recientes primero.
func (r *PgMoodRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]domain.MoodLog, error) {
	const query = `
		SELECT id, user_id, emotion, intensity, sentiment_score, note, created_at
		FROM mood_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.MoodLog, 0, limit)
	for rows.Next() {
		var e domain.MoodLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.Emotion, &e.Intensity, &e.SentimentScore, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PgMoodRepository) Summary(ctx context.Context, userID string) (domain.MoodSummary, error) {
	const query = `
		SELECT emotion, COUNT(*), COALESCE(SUM(sentiment_score), 0)
		FROM mood_logs
		WHERE user_id = $1
		GROUP BY emotion
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return domain.MoodSummary{}, err
	}
	defer rows.Close()

	summary := domain.MoodSummary{Counts: map[string]int{}}
	var sentimentSum float64
	for rows.Next() {
		var (
			emotion string
			count   int
			sum     float64
		)
		if err := rows.Scan(&emotion, &count, &sum); err != nil {
			return domain.MoodSummary{}, err
		}
		summary.Counts[emotion] = count
		summary.Total += count
		sentimentSum += sum
	}
	if err := rows.Err(); err != nil {
		return domain.MoodSummary{}, err
	}
	if summary.Total > 0 {
		summary.AverageSentiment = sentimentSum / float64(summary.Total)
	}
	return summary, nil
}
