package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apierrors "github.com/summitfg/summit-api/pkg/api/errors"
	"github.com/summitfg/summit-api/pkg/chat"
	"github.com/summitfg/summit-api/pkg/metrics"
	"github.com/summitfg/summit-api/pkg/models"
)

// ChatHandler handles chat session and message endpoints.
type ChatHandler struct {
	chat      *chat.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService *chat.Service, m *metrics.Metrics) *ChatHandler {
	return &ChatHandler{
		chat:      chatService,
		metrics:   m,
		validator: validator.New(),
	}
}

// CreateSession starts a new chat session.
func (h *ChatHandler) CreateSession(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	session, err := h.chat.CreateSession(ctx, req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusCreated, session)
}

// GetSession returns a session's metadata.
func (h *ChatHandler) GetSession(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	session, err := h.chat.GetSession(ctx, c.Param("sessionId"))
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	if session == nil {
		return apierrors.NotFoundError(c, "chat session")
	}

	return c.JSON(http.StatusOK, session)
}

// UpdateSession applies metadata updates to a session.
func (h *ChatHandler) UpdateSession(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.UpdateSessionRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	session, err := h.chat.UpdateSession(ctx, c.Param("sessionId"), req)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			return apierrors.NotFoundError(c, "chat session")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// AppendMessage appends one message to a session's log.
func (h *ChatHandler) AppendMessage(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.AppendMessageRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	message, err := h.chat.AppendMessage(ctx, c.Param("sessionId"), req)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			return apierrors.NotFoundError(c, "chat session")
		}
		return apierrors.DatabaseError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordChatMessage()
	}

	return c.JSON(http.StatusCreated, message)
}

// GetMessages returns the most recent messages of a session in order.
func (h *ChatHandler) GetMessages(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sessionID := c.Param("sessionId")

	session, err := h.chat.GetSession(ctx, sessionID)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	if session == nil {
		return apierrors.NotFoundError(c, "chat session")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	messages, err := h.chat.GetMessages(ctx, sessionID, limit)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.ChatMessagesResponse{
		SessionID: sessionID,
		Messages:  messages,
		Total:     len(messages),
	})
}
