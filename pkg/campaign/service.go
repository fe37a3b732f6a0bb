package campaign

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/summitfg/summit-api/pkg/ai/llm"
)

// Service generates email campaigns and multilingual outreach text. Both
// features follow the same discipline as the quiz recommender: try the
// configured model, fall back to static templates on any failure.
type Service struct {
	campaignLLM llm.LLMClient // OpenAI, email campaigns
	leadGenLLM  llm.LLMClient // Gemini, multilingual outreach
	logger      *log.Logger
}

// NewService creates a new campaign service. Either client may be nil; its
// feature then always serves templates.
func NewService(campaignLLM, leadGenLLM llm.LLMClient, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{campaignLLM: campaignLLM, leadGenLLM: leadGenLLM, logger: logger}
}

// EmailCampaignRequest describes the campaign to generate
type EmailCampaignRequest struct {
	Audience   string `json:"audience" validate:"required,max=500"`
	Goal       string `json:"goal" validate:"required,max=500"`
	EmailCount int    `json:"email_count" validate:"omitempty,min=1,max=7"`
}

// CampaignEmail is one email in a generated sequence
type CampaignEmail struct {
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	SendDayOffset int    `json:"send_day_offset"`
}

// EmailCampaignResponse is a generated campaign
type EmailCampaignResponse struct {
	CampaignName string          `json:"campaign_name"`
	Emails       []CampaignEmail `json:"emails"`
	AIGenerated  bool            `json:"ai_generated"`
}

// LeadGenTextRequest describes the outreach text to generate
type LeadGenTextRequest struct {
	Audience     string `json:"audience" validate:"required,max=500"`
	Language     string `json:"language" validate:"required,max=64"`
	MessageCount int    `json:"message_count" validate:"omitempty,min=1,max=10"`
}

// LeadGenTextResponse is a set of generated outreach messages
type LeadGenTextResponse struct {
	Language    string   `json:"language"`
	Messages    []string `json:"messages"`
	AIGenerated bool     `json:"ai_generated"`
}

// GenerateEmailCampaign produces an email sequence for the given audience
// and goal
func (s *Service) GenerateEmailCampaign(ctx context.Context, req EmailCampaignRequest) *EmailCampaignResponse {
	emailCount := req.EmailCount
	if emailCount == 0 {
		emailCount = 3
	}

	if s.campaignLLM != nil {
		prompt := llm.EmailCampaignPrompt(req.Audience, req.Goal, emailCount)
		raw, err := s.campaignLLM.Complete(ctx, prompt, llm.CampaignWriterSystemPrompt)
		if err == nil {
			if resp, perr := parseEmailCampaign(raw); perr == nil {
				resp.AIGenerated = true
				return resp
			} else {
				s.logger.Printf("⚠️ Campaign response unparseable, using templates: %v", perr)
			}
		} else {
			s.logger.Printf("⚠️ Campaign LLM call failed, using templates: %v", err)
		}
	}

	return fallbackEmailCampaign(req.Audience, emailCount)
}

// GenerateLeadGenText produces outreach messages in the requested language
func (s *Service) GenerateLeadGenText(ctx context.Context, req LeadGenTextRequest) *LeadGenTextResponse {
	messageCount := req.MessageCount
	if messageCount == 0 {
		messageCount = 3
	}

	if s.leadGenLLM != nil {
		prompt := llm.LeadGenTextPrompt(req.Audience, req.Language, messageCount)
		raw, err := s.leadGenLLM.Complete(ctx, prompt, llm.LeadGenWriterSystemPrompt)
		if err == nil {
			if resp, perr := parseLeadGenText(raw); perr == nil {
				resp.AIGenerated = true
				return resp
			} else {
				s.logger.Printf("⚠️ Lead-gen text unparseable, using templates: %v", perr)
			}
		} else {
			s.logger.Printf("⚠️ Lead-gen LLM call failed, using templates: %v", err)
		}
	}

	return fallbackLeadGenText(req.Language, messageCount)
}

func parseEmailCampaign(raw string) (*EmailCampaignResponse, error) {
	var resp EmailCampaignResponse
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &resp); err != nil {
		return nil, fmt.Errorf("invalid campaign JSON: %w", err)
	}
	if resp.CampaignName == "" || len(resp.Emails) == 0 {
		return nil, fmt.Errorf("campaign missing name or emails")
	}
	for _, e := range resp.Emails {
		if e.Subject == "" || e.Body == "" {
			return nil, fmt.Errorf("campaign email missing subject or body")
		}
	}
	return &resp, nil
}

func parseLeadGenText(raw string) (*LeadGenTextResponse, error) {
	var resp LeadGenTextResponse
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &resp); err != nil {
		return nil, fmt.Errorf("invalid lead-gen JSON: %w", err)
	}
	if len(resp.Messages) == 0 {
		return nil, fmt.Errorf("lead-gen response has no messages")
	}
	return &resp, nil
}

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
