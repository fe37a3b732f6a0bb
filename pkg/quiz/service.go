package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/summitfg/summit-api/pkg/ai/llm"
	"github.com/summitfg/summit-api/pkg/models"
	"gorm.io/gorm"
)

// Service runs career quiz submissions: ask the LLM for a recommendation,
// fall back to the fixed decision tree on any failure, persist exactly one
// result row either way.
type Service struct {
	db     *gorm.DB
	llm    llm.LLMClient
	logger *log.Logger
}

// NewService creates a new quiz service. The LLM client may be nil, in which
// case every submission takes the fallback path.
func NewService(db *gorm.DB, client llm.LLMClient, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{db: db, llm: client, logger: logger}
}

// Submit processes one quiz submission and returns the recommendation that
// was persisted. The returned bool reports whether the AI path produced it.
func (s *Service) Submit(ctx context.Context, answers models.QuizAnswers) (*models.Recommendation, bool, error) {
	rec, aiGenerated := s.recommend(ctx, answers)

	result := models.CareerQuizResult{
		Background:       answers.Background,
		Skills:           models.StringList(answers.Skills),
		Motivations:      models.StringList(answers.Motivations),
		Values:           models.StringList(answers.Values),
		WorkStyles:       models.StringList(answers.WorkStyles),
		FinancialGoal:    answers.FinancialGoal,
		RecommendedPath:  rec.RecommendedPath,
		Explanation:      rec.Explanation,
		Strengths:        models.StringList(rec.Strengths),
		DevelopmentAreas: models.StringList(rec.DevelopmentAreas),
		NextSteps:        models.StringList(rec.NextSteps),
		Timeframe:        rec.Timeframe,
		AIGenerated:      aiGenerated,
	}

	if err := s.db.WithContext(ctx).Create(&result).Error; err != nil {
		return nil, false, fmt.Errorf("failed to persist quiz result: %w", err)
	}

	return &rec, aiGenerated, nil
}

// recommend tries the AI path and falls back to the decision tree. Exactly
// one of the two paths produces the returned recommendation.
func (s *Service) recommend(ctx context.Context, answers models.QuizAnswers) (models.Recommendation, bool) {
	if s.llm == nil {
		return FallbackRecommendation(answers), false
	}

	prompt := llm.CareerQuizPrompt(
		answers.Background,
		answers.Skills,
		answers.Motivations,
		answers.Values,
		answers.WorkStyles,
		answers.FinancialGoal,
	)

	raw, err := s.llm.Complete(ctx, prompt, llm.CareerAdvisorSystemPrompt)
	if err != nil {
		s.logger.Printf("⚠️ Quiz recommendation LLM call failed, using fallback: %v", err)
		return FallbackRecommendation(answers), false
	}

	rec, err := parseRecommendation(raw)
	if err != nil {
		s.logger.Printf("⚠️ Quiz recommendation unparseable, using fallback: %v", err)
		return FallbackRecommendation(answers), false
	}

	return rec, true
}

// parseRecommendation parses model output defensively. Anything that does not
// decode into the full expected shape is treated like a failed external call.
func parseRecommendation(raw string) (models.Recommendation, error) {
	var rec models.Recommendation

	cleaned := stripCodeFences(raw)
	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		return rec, fmt.Errorf("invalid recommendation JSON: %w", err)
	}

	if rec.RecommendedPath == "" || rec.Explanation == "" {
		return rec, fmt.Errorf("recommendation missing required fields")
	}
	if len(rec.Strengths) == 0 || len(rec.NextSteps) == 0 {
		return rec, fmt.Errorf("recommendation missing strengths or next steps")
	}

	return rec, nil
}

// stripCodeFences removes a leading/trailing markdown fence the model
// sometimes wraps its JSON in despite instructions.
func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}
