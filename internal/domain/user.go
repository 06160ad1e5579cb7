package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	PasswordHash string    `json:"-"`
	CurrentMood  string    `json:"current_mood,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
