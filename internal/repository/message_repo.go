package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"ai-listener/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message domain.Message) error
	ListRecentByUserID(ctx context.Context, userID string, limit int) ([]domain.Message, error)
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Create(ctx context.Context, message domain.Message) error {
	const query = `
		INSERT INTO chat_messages (id, user_id, content, is_ai_response, emotion_detected, sentiment_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var emotion interface{}
	if message.EmotionDetected != "" {
		emotion = message.EmotionDetected
	}

	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.UserID,
		message.Content,
		message.IsAIResponse,
		emotion,
		message.SentimentScore,
		message.CreatedAt,
	)
	return err
}

// ListRecentByUserID devuelve los últimos limit mensajes en orden cronológico.
func (r *PgMessageRepository) ListRecentByUserID(ctx context.Context, userID string, limit int) ([]domain.Message, error) {
	const query = `
		SELECT id, user_id, content, is_ai_response, emotion_detected, sentiment_score, created_at
		FROM (
			SELECT id, user_id, content, is_ai_response, emotion_detected, sentiment_score, created_at
			FROM chat_messages
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]domain.Message, 0, limit)
	for rows.Next() {
		var msg domain.Message
		var emotion *string

		err = rows.Scan(
			&msg.ID,
			&msg.UserID,
			&msg.Content,
			&msg.IsAIResponse,
			&emotion,
			&msg.SentimentScore,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if emotion != nil {
			msg.EmotionDetected = *emotion
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *PgMessageRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM chat_messages WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
