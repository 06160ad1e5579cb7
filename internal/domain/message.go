package domain

import "time"

// Message es una entrada del historial de chat. Los mensajes del usuario
// guardan la emoción detectada; las respuestas generadas llevan IsAIResponse.
type Message struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Content         string    `json:"content"`
	IsAIResponse    bool      `json:"is_ai_response"`
	EmotionDetected string    `json:"emotion_detected,omitempty"`
	SentimentScore  *float64  `json:"sentiment_score,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
