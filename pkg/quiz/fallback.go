package quiz

import (
	"strings"

	"github.com/summitfg/summit-api/pkg/models"
)

// Career paths offered by the organization
const (
	PathFinancialProfessional   = "Financial Professional"
	PathMarketingDirector       = "Marketing Director"
	PathSeniorMarketingDirector = "Senior Marketing Director"
	PathTeamBuilder             = "Team Builder"
	PathFieldAssociate          = "Field Associate"
)

// answerTraits are the boolean predicates the fallback tree branches on
type answerTraits struct {
	hasLeadership         bool
	hasSales              bool
	hasFinancialKnowledge bool
	wantsIndependence     bool
	wantsTeam             bool
	highFinancialGoals    bool
}

func deriveTraits(answers models.QuizAnswers) answerTraits {
	return answerTraits{
		hasLeadership:         containsKeyword(answers.Skills, "leader") || containsKeyword(answers.Motivations, "lead"),
		hasSales:              containsKeyword(answers.Skills, "sales") || containsKeyword(answers.Skills, "selling"),
		hasFinancialKnowledge: containsKeyword(answers.Skills, "financ") || containsKeyword(answers.Skills, "accounting"),
		wantsIndependence:     containsAnyKeyword(answers.Motivations, answers.Values, answers.WorkStyles, "independen"),
		wantsTeam:             containsAnyKeyword(answers.Motivations, answers.Values, answers.WorkStyles, "team"),
		highFinancialGoals:    answers.FinancialGoal == "high" || answers.FinancialGoal == "very_high",
	}
}

func containsKeyword(items []string, keyword string) bool {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), keyword) {
			return true
		}
	}
	return false
}

func containsAnyKeyword(a, b, c []string, keyword string) bool {
	return containsKeyword(a, keyword) || containsKeyword(b, keyword) || containsKeyword(c, keyword)
}

// FallbackRecommendation selects one of five fixed templates from the quiz
// answers. It is pure and deterministic: the same answers always produce the
// same path. Used whenever the LLM path fails.
func FallbackRecommendation(answers models.QuizAnswers) models.Recommendation {
	t := deriveTraits(answers)

	switch {
	case t.hasLeadership && t.hasSales && t.highFinancialGoals:
		return models.Recommendation{
			RecommendedPath: PathSeniorMarketingDirector,
			Explanation: "Your combination of leadership experience, sales ability and ambitious " +
				"financial goals points to building and running your own agency. Senior Marketing " +
				"Directors lead large teams and earn overrides on everything their organization produces.",
			Strengths:        []string{"Proven leadership", "Sales ability", "High ambition"},
			DevelopmentAreas: []string{"Agency-level operations", "Recruiting at scale"},
			NextSteps: []string{
				"Complete your licensing requirements",
				"Shadow a current Senior Marketing Director for a month",
				"Build a 90-day recruiting plan with your upline",
			},
			Timeframe: "3-5 years to full agency ownership",
		}

	case t.hasLeadership && t.wantsTeam:
		return models.Recommendation{
			RecommendedPath: PathTeamBuilder,
			Explanation: "You lead naturally and you want to win with people around you. The Team " +
				"Builder track focuses on recruiting, mentoring and developing new associates while " +
				"you grow your own practice.",
			Strengths:        []string{"People development", "Collaborative mindset"},
			DevelopmentAreas: []string{"Personal production consistency", "Time management across a team"},
			NextSteps: []string{
				"Get licensed and close your first ten clients",
				"Recruit your first three associates",
				"Run a weekly team training cadence",
			},
			Timeframe: "18-24 months to an established team",
		}

	case t.hasSales && t.highFinancialGoals:
		return models.Recommendation{
			RecommendedPath: PathMarketingDirector,
			Explanation: "Strong sales instincts and real financial ambition are the core of the " +
				"Marketing Director role. You will drive your own production first, then layer in a " +
				"small team as your client base grows.",
			Strengths:        []string{"Closing ability", "Goal orientation"},
			DevelopmentAreas: []string{"Leadership skills", "Financial product depth"},
			NextSteps: []string{
				"Complete product training and licensing",
				"Set a monthly personal production target",
				"Identify two potential recruits from your network",
			},
			Timeframe: "12-18 months to Marketing Director",
		}

	case t.hasFinancialKnowledge || t.wantsIndependence:
		return models.Recommendation{
			RecommendedPath: PathFinancialProfessional,
			Explanation: "Your financial knowledge and preference for independent work fit the " +
				"Financial Professional track: deep client relationships, comprehensive planning and " +
				"full control of your own book of business.",
			Strengths:        []string{"Financial literacy", "Self-direction"},
			DevelopmentAreas: []string{"Prospecting pipeline", "Presentation skills"},
			NextSteps: []string{
				"Obtain your licenses",
				"Build your first fifty-name prospect list",
				"Complete the financial needs analysis certification",
			},
			Timeframe: "6-12 months to consistent production",
		}

	default:
		return models.Recommendation{
			RecommendedPath: PathFieldAssociate,
			Explanation: "The Field Associate track is the best place to start: learn the business " +
				"alongside an experienced mentor, get licensed at your own pace and discover which " +
				"direction fits you before committing to a specialty.",
			Strengths:        []string{"Willingness to learn", "Fresh perspective"},
			DevelopmentAreas: []string{"Industry knowledge", "Sales fundamentals"},
			NextSteps: []string{
				"Attend a business overview session",
				"Pair with a field trainer for joint appointments",
				"Start the licensing study program",
			},
			Timeframe: "3-6 months of field training",
		}
	}
}
