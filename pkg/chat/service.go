package chat

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/summitfg/summit-api/pkg/models"
	"gorm.io/gorm"
)

// DefaultMessageLimit caps how many messages a fetch returns when the caller
// does not ask for a specific window.
const DefaultMessageLimit = 50

// ErrSessionNotFound is returned when the external session id is unknown
var ErrSessionNotFound = errors.New("chat session not found")

// Service manages chat sessions and their append-only message logs. Sessions
// are addressed by the external session_id string; the numeric primary key
// never leaves this package.
type Service struct {
	db *gorm.DB
}

// NewService creates a new chat service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateSession starts a new session. When the caller supplies no session id,
// one is generated for them.
func (s *Service) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*models.ChatSession, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session := models.ChatSession{
		SessionID:   sessionID,
		Topic:       req.Topic,
		UserProfile: req.UserProfile,
	}

	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}

	return &session, nil
}

// GetSession looks a session up by its external id, nil when unknown
func (s *Service) GetSession(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	var session models.ChatSession
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat session: %w", err)
	}
	return &session, nil
}

// UpdateSession applies last-write-wins metadata updates to a session
func (s *Service) UpdateSession(ctx context.Context, sessionID string, req models.UpdateSessionRequest) (*models.ChatSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	updates := map[string]interface{}{}
	if req.Topic != nil {
		updates["topic"] = *req.Topic
	}
	if req.EmotionalState != nil {
		updates["emotional_state"] = *req.EmotionalState
	}
	if req.UserProfile != nil {
		updates["user_profile"] = *req.UserProfile
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(session).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update chat session: %w", err)
		}
	}

	return s.GetSession(ctx, sessionID)
}

// AppendMessage appends one immutable message to a session's log
func (s *Service) AppendMessage(ctx context.Context, sessionID string, req models.AppendMessageRequest) (*models.ChatMessage, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	message := models.ChatMessage{
		SessionID: sessionID,
		Role:      req.Role,
		Content:   req.Content,
	}

	if err := s.db.WithContext(ctx).Create(&message).Error; err != nil {
		return nil, fmt.Errorf("failed to append chat message: %w", err)
	}

	return &message, nil
}

// GetMessages returns the most recent `limit` messages of a session in
// chronological order. Older messages are dropped first; the newest message
// is always included.
func (s *Service) GetMessages(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 || limit > DefaultMessageLimit {
		limit = DefaultMessageLimit
	}

	messages := []models.ChatMessage{}
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat messages: %w", err)
	}

	// Flip back to chronological order for the caller
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages, nil
}
