package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apierrors "github.com/summitfg/summit-api/pkg/api/errors"
	"github.com/summitfg/summit-api/pkg/metrics"
	"github.com/summitfg/summit-api/pkg/models"
	"github.com/summitfg/summit-api/pkg/quiz"
)

// QuizHandler handles career quiz submissions.
type QuizHandler struct {
	quiz      *quiz.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(quizService *quiz.Service, m *metrics.Metrics) *QuizHandler {
	return &QuizHandler{
		quiz:      quizService,
		metrics:   m,
		validator: validator.New(),
	}
}

// SubmitQuiz runs the career recommender and returns the recommendation.
// LLM failures never surface to the caller; the fallback path answers instead.
func (h *QuizHandler) SubmitQuiz(c echo.Context) error {
	// Generous timeout: this may wait on an LLM round trip before falling back
	ctx, cancel := context.WithTimeout(c.Request().Context(), 45*time.Second)
	defer cancel()

	var answers models.QuizAnswers
	if err := c.Bind(&answers); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(&answers); err != nil {
		return apierrors.ValidationError(c, err)
	}

	rec, aiGenerated, err := h.quiz.Submit(ctx, answers)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordQuizSubmission(aiGenerated)
	}

	return c.JSON(http.StatusOK, models.QuizResponse{
		Success:        true,
		Recommendation: *rec,
	})
}
