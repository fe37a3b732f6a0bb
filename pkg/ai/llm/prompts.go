package llm

import (
	"fmt"
	"strings"
)

// System prompts for the AI features

const (
	// CareerAdvisorSystemPrompt guides the career quiz recommender
	CareerAdvisorSystemPrompt = `You are a career advisor for a financial-services sales organization.

Your role is to:
- Evaluate a candidate's quiz answers (background, skills, motivations, values, work style, financial goals)
- Recommend exactly one career path from: Financial Professional, Marketing Director, Senior Marketing Director, Team Builder, Field Associate
- Explain the recommendation in plain, encouraging language

Respond ONLY with a JSON object of this exact shape, no markdown fences, no commentary:
{
  "recommended_path": "...",
  "explanation": "...",
  "strengths": ["..."],
  "development_areas": ["..."],
  "next_steps": ["..."],
  "timeframe": "..."
}`

	// CampaignWriterSystemPrompt guides the email-campaign generator
	CampaignWriterSystemPrompt = `You are an email marketing copywriter for a financial-services team.

Guidelines:
1. Professional, warm, compliant tone (no income guarantees, no pressure tactics)
2. Each email has a subject line and a short body (under 150 words)
3. Always end with a clear, low-friction call to action

Respond ONLY with a JSON object of this exact shape, no markdown fences:
{
  "campaign_name": "...",
  "emails": [
    {"subject": "...", "body": "...", "send_day_offset": 0}
  ]
}`

	// LeadGenWriterSystemPrompt guides the multilingual lead-gen text generator
	LeadGenWriterSystemPrompt = `You are an outreach copywriter for a financial-services recruiting team.

Write short, personal outreach messages in the requested language. Keep each
message under 80 words, avoid financial jargon, and never promise income.

Respond ONLY with a JSON object of this exact shape, no markdown fences:
{
  "language": "...",
  "messages": ["...", "...", "..."]
}`
)

// CareerQuizPrompt builds the user prompt for a quiz submission
func CareerQuizPrompt(background string, skills, motivations, values, workStyles []string, financialGoal string) string {
	return fmt.Sprintf(`A candidate completed our career path quiz. Their answers:

Background: %s
Skills: %s
Motivations: %s
Values: %s
Work style: %s
Financial goal: %s

Recommend the single best career path for this candidate.`,
		background,
		strings.Join(skills, ", "),
		strings.Join(motivations, ", "),
		strings.Join(values, ", "),
		strings.Join(workStyles, ", "),
		financialGoal)
}

// EmailCampaignPrompt builds the user prompt for a campaign request
func EmailCampaignPrompt(audience, goal string, emailCount int) string {
	return fmt.Sprintf(`Create an email campaign.

Audience: %s
Goal: %s
Number of emails: %d

Space the emails a few days apart using send_day_offset.`, audience, goal, emailCount)
}

// LeadGenTextPrompt builds the user prompt for multilingual outreach text
func LeadGenTextPrompt(audience, language string, messageCount int) string {
	return fmt.Sprintf(`Write %d outreach messages in %s.

Audience: %s

Each message should invite the reader to a short intro conversation about
career opportunities on our team.`, messageCount, language, audience)
}
