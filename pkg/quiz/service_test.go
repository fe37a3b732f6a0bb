package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summitfg/summit-api/pkg/ai/llm"
	"github.com/summitfg/summit-api/pkg/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeLLM returns a canned response or error for every call
type fakeLLM struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLM) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.ChatResponse{Message: f.response}, nil
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CareerQuizResult{}))
	return db
}

func leaderAnswers() models.QuizAnswers {
	return models.QuizAnswers{
		Background:    "Ten years running a retail sales team",
		Skills:        []string{"Leadership", "Sales"},
		Motivations:   []string{"Building something of my own"},
		Values:        []string{"Growth"},
		WorkStyles:    []string{"Hands on"},
		FinancialGoal: "very_high",
	}
}

const validAIResponse = `{
	"recommended_path": "Team Builder",
	"explanation": "You thrive when developing people.",
	"strengths": ["Mentoring", "Communication"],
	"development_areas": ["Product depth"],
	"next_steps": ["Get licensed", "Recruit two associates"],
	"timeframe": "12 months"
}`

func TestSubmit_AIPath(t *testing.T) {
	db := setupTestDB(t)
	fake := &fakeLLM{response: validAIResponse}
	svc := NewService(db, fake, nil)

	rec, aiGenerated, err := svc.Submit(context.Background(), leaderAnswers())
	require.NoError(t, err)

	assert.True(t, aiGenerated)
	assert.Equal(t, "Team Builder", rec.RecommendedPath)
	assert.Equal(t, 1, fake.calls)

	// Exactly one row persisted
	var count int64
	require.NoError(t, db.Model(&models.CareerQuizResult{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var stored models.CareerQuizResult
	require.NoError(t, db.First(&stored).Error)
	assert.True(t, stored.AIGenerated)
	assert.Equal(t, "Team Builder", stored.RecommendedPath)
	assert.Equal(t, "very_high", stored.FinancialGoal)
}

func TestSubmit_FallbackOnLLMError(t *testing.T) {
	db := setupTestDB(t)
	fake := &fakeLLM{err: errors.New("upstream timeout")}
	svc := NewService(db, fake, nil)

	rec, aiGenerated, err := svc.Submit(context.Background(), leaderAnswers())
	require.NoError(t, err)

	assert.False(t, aiGenerated)
	assert.Equal(t, PathSeniorMarketingDirector, rec.RecommendedPath)

	var stored models.CareerQuizResult
	require.NoError(t, db.First(&stored).Error)
	assert.False(t, stored.AIGenerated)
	assert.Equal(t, PathSeniorMarketingDirector, stored.RecommendedPath)
}

func TestSubmit_FallbackOnMalformedJSON(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name     string
		response string
	}{
		{name: "not json", response: "I recommend the Team Builder path!"},
		{name: "empty object", response: "{}"},
		{name: "missing strengths", response: `{"recommended_path":"Team Builder","explanation":"x","next_steps":["y"]}`},
		{name: "wrong shape", response: `["Team Builder"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(db, &fakeLLM{response: tt.response}, nil)
			rec, aiGenerated, err := svc.Submit(context.Background(), leaderAnswers())
			require.NoError(t, err)
			assert.False(t, aiGenerated)
			assert.Equal(t, PathSeniorMarketingDirector, rec.RecommendedPath)
		})
	}
}

func TestSubmit_AcceptsFencedJSON(t *testing.T) {
	db := setupTestDB(t)
	fake := &fakeLLM{response: "```json\n" + validAIResponse + "\n```"}
	svc := NewService(db, fake, nil)

	rec, aiGenerated, err := svc.Submit(context.Background(), leaderAnswers())
	require.NoError(t, err)
	assert.True(t, aiGenerated)
	assert.Equal(t, "Team Builder", rec.RecommendedPath)
}

func TestSubmit_NilClientUsesFallback(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, nil, nil)

	rec, aiGenerated, err := svc.Submit(context.Background(), leaderAnswers())
	require.NoError(t, err)
	assert.False(t, aiGenerated)
	assert.NotEmpty(t, rec.RecommendedPath)
}

func TestFallbackRecommendation_Deterministic(t *testing.T) {
	answers := leaderAnswers()
	first := FallbackRecommendation(answers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FallbackRecommendation(answers))
	}
}

func TestFallbackRecommendation_DecisionTree(t *testing.T) {
	tests := []struct {
		name     string
		answers  models.QuizAnswers
		wantPath string
	}{
		{
			name:     "leadership plus sales plus high goals",
			answers:  leaderAnswers(),
			wantPath: PathSeniorMarketingDirector,
		},
		{
			name: "leadership plus team preference",
			answers: models.QuizAnswers{
				Background:    "Coached youth sports for years",
				Skills:        []string{"Leadership"},
				Motivations:   []string{"Winning as a team"},
				FinancialGoal: "comfortable",
			},
			wantPath: PathTeamBuilder,
		},
		{
			name: "sales plus high goals",
			answers: models.QuizAnswers{
				Background:    "Car sales",
				Skills:        []string{"Sales"},
				Motivations:   []string{"Earning potential"},
				FinancialGoal: "high",
			},
			wantPath: PathMarketingDirector,
		},
		{
			name: "financial knowledge",
			answers: models.QuizAnswers{
				Background:    "Bank teller",
				Skills:        []string{"Financial analysis"},
				Motivations:   []string{"Helping families"},
				FinancialGoal: "modest",
			},
			wantPath: PathFinancialProfessional,
		},
		{
			name: "wants independence",
			answers: models.QuizAnswers{
				Background:    "Freelancer",
				Skills:        []string{"Writing"},
				Motivations:   []string{"Independence"},
				FinancialGoal: "modest",
			},
			wantPath: PathFinancialProfessional,
		},
		{
			name: "no strong signals",
			answers: models.QuizAnswers{
				Background:    "Recent graduate",
				Skills:        []string{"Organization"},
				Motivations:   []string{"Learning"},
				FinancialGoal: "modest",
			},
			wantPath: PathFieldAssociate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := FallbackRecommendation(tt.answers)
			assert.Equal(t, tt.wantPath, rec.RecommendedPath)
			assert.NotEmpty(t, rec.Explanation)
			assert.NotEmpty(t, rec.Strengths)
			assert.NotEmpty(t, rec.NextSteps)
			assert.NotEmpty(t, rec.Timeframe)
		})
	}
}
