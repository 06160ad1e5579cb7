package domain

import "time"

type MoodLog struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Emotion        string    `json:"emotion"`
	Intensity      float64   `json:"intensity"`
	SentimentScore float64   `json:"sentiment_score"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// MoodSummary agrega el historial de ánimo de un usuario.
type MoodSummary struct {
	Total            int            `json:"total"`
	Counts           map[string]int `json:"counts"`
	AverageSentiment float64        `json:"average_sentiment"`
	Dominant         string         `json:"dominant,omitempty"`
}
