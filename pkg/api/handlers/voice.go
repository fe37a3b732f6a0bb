package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apierrors "github.com/summitfg/summit-api/pkg/api/errors"
	"github.com/summitfg/summit-api/pkg/chat"
	"github.com/summitfg/summit-api/pkg/models"
)

// TranscriptRequest is one chunk of a voice conversation transcript.
type TranscriptRequest struct {
	SessionID  string `json:"session_id" validate:"omitempty,max=64"`
	Transcript string `json:"transcript" validate:"required,max=10000"`
}

// TranscriptResponse acknowledges a transcript chunk.
type TranscriptResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// VoiceHandler accepts voice transcripts and records them against a chat
// session. Demo feature: no speech processing happens server side.
type VoiceHandler struct {
	chat      *chat.Service
	validator *validator.Validate
}

// NewVoiceHandler creates a new voice handler.
func NewVoiceHandler(chatService *chat.Service) *VoiceHandler {
	return &VoiceHandler{
		chat:      chatService,
		validator: validator.New(),
	}
}

// SubmitTranscript appends a transcript chunk to a chat session, creating the
// session on first use, and returns a canned acknowledgement.
func (h *VoiceHandler) SubmitTranscript(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req TranscriptRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	sessionID := req.SessionID
	if sessionID != "" {
		session, err := h.chat.GetSession(ctx, sessionID)
		if err != nil {
			return apierrors.DatabaseError(c, err)
		}
		if session == nil {
			sessionID = ""
		}
	}

	if sessionID == "" {
		session, err := h.chat.CreateSession(ctx, models.CreateSessionRequest{Topic: "voice"})
		if err != nil {
			return apierrors.DatabaseError(c, err)
		}
		sessionID = session.SessionID
	}

	_, err := h.chat.AppendMessage(ctx, sessionID, models.AppendMessageRequest{
		Role:    "user",
		Content: req.Transcript,
	})
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			return apierrors.NotFoundError(c, "chat session")
		}
		return apierrors.DatabaseError(c, err)
	}

	reply := "Thanks for sharing. A member of our team will follow up with you shortly."
	if _, err := h.chat.AppendMessage(ctx, sessionID, models.AppendMessageRequest{
		Role:    "assistant",
		Content: reply,
	}); err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, TranscriptResponse{
		SessionID: sessionID,
		Reply:     reply,
	})
}
