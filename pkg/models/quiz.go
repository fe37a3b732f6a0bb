package models

import "time"

// QuizAnswers holds a validated career quiz submission
type QuizAnswers struct {
	Background    string   `json:"background" validate:"required,max=2000"`
	Skills        []string `json:"skills" validate:"required,min=1,dive,max=128"`
	Motivations   []string `json:"motivations" validate:"required,min=1,dive,max=128"`
	Values        []string `json:"values" validate:"omitempty,dive,max=128"`
	WorkStyles    []string `json:"work_styles" validate:"omitempty,dive,max=128"`
	FinancialGoal string   `json:"financial_goal" validate:"required,oneof=modest comfortable high very_high"`
}

// Recommendation is the structured career path recommendation,
// produced by either the LLM or the fallback decision tree
type Recommendation struct {
	RecommendedPath  string   `json:"recommended_path"`
	Explanation      string   `json:"explanation"`
	Strengths        []string `json:"strengths"`
	DevelopmentAreas []string `json:"development_areas"`
	NextSteps        []string `json:"next_steps"`
	Timeframe        string   `json:"timeframe"`
}

// CareerQuizResult is the persisted union of answers and recommendation.
// Rows are append-only; there is no update or delete surface.
type CareerQuizResult struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Background       string     `gorm:"type:text" json:"background"`
	Skills           StringList `gorm:"type:text" json:"skills"`
	Motivations      StringList `gorm:"type:text" json:"motivations"`
	Values           StringList `gorm:"type:text" json:"values"`
	WorkStyles       StringList `gorm:"type:text" json:"work_styles"`
	FinancialGoal    string     `gorm:"size:32" json:"financial_goal"`
	RecommendedPath  string     `gorm:"size:128" json:"recommended_path"`
	Explanation      string     `gorm:"type:text" json:"explanation"`
	Strengths        StringList `gorm:"type:text" json:"strengths"`
	DevelopmentAreas StringList `gorm:"type:text" json:"development_areas"`
	NextSteps        StringList `gorm:"type:text" json:"next_steps"`
	Timeframe        string     `gorm:"size:64" json:"timeframe"`
	AIGenerated      bool       `gorm:"default:false" json:"ai_generated"`
	CreatedAt        time.Time  `json:"created_at"`
}

// QuizResponse is returned to the caller after a submission
type QuizResponse struct {
	Success        bool           `json:"success"`
	Recommendation Recommendation `json:"recommendation"`
}
