package models

import "time"

// ChatSession groups an ordered sequence of messages. Callers address a
// session by its external SessionID string, never by the numeric primary key.
type ChatSession struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	SessionID      string    `gorm:"size:64;uniqueIndex;not null" json:"session_id"`
	Topic          string    `gorm:"size:128" json:"topic"`
	EmotionalState string    `gorm:"size:64" json:"emotional_state"`
	UserProfile    string    `gorm:"type:text" json:"user_profile"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ChatMessage is append-only and immutable once created
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"size:64;index;not null" json:"session_id"`
	Role      string    `gorm:"size:16;not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSessionRequest starts a new chat session
type CreateSessionRequest struct {
	SessionID   string `json:"session_id" validate:"omitempty,max=64"`
	Topic       string `json:"topic" validate:"omitempty,max=128"`
	UserProfile string `json:"user_profile"`
}

// UpdateSessionRequest mutates session metadata, last write wins
type UpdateSessionRequest struct {
	Topic          *string `json:"topic" validate:"omitempty,max=128"`
	EmotionalState *string `json:"emotional_state" validate:"omitempty,max=64"`
	UserProfile    *string `json:"user_profile"`
}

// AppendMessageRequest appends one message to a session
type AppendMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

// ChatMessagesResponse wraps a window of session messages
type ChatMessagesResponse struct {
	SessionID string        `json:"session_id"`
	Messages  []ChatMessage `json:"messages"`
	Total     int           `json:"total"`
}
