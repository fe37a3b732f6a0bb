package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sashabaranov/go-openai"
)

// GeminiClient wraps Google Gemini through its OpenAI-compatible endpoint
type GeminiClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	logger      *log.Logger
}

// GeminiConfig for Gemini client
type GeminiConfig struct {
	APIKey      string
	BaseURL     string        // default: https://generativelanguage.googleapis.com/v1beta/openai
	Model       string        // default: gemini-1.5-flash
	Temperature float32       // default: 0.7
	MaxTokens   int           // default: 2000
	Timeout     time.Duration // default: 30s, applied per call
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(cfg GeminiConfig, logger *log.Logger) *GeminiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL

	client := openai.NewClientWithConfig(config)

	logger.Printf("✨ Gemini client initialized (model: %s)", cfg.Model)

	return &GeminiClient{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
		logger:      logger,
	}
}

// Chat sends a chat completion request to Gemini
func (c *GeminiClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	c.logger.Printf("✨ Gemini Chat: %d messages, model: %s", len(req.Messages), c.model)

	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.temperature
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	duration := time.Since(start)

	if err != nil {
		c.logger.Printf("❌ Gemini Chat failed: %v (duration: %v)", err, duration)
		return nil, fmt.Errorf("gemini chat failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from gemini")
	}

	c.logger.Printf("✅ Gemini Chat completed: %d tokens (duration: %v)", resp.Usage.TotalTokens, duration)

	return &ChatResponse{
		Message:      resp.Choices[0].Message.Content,
		TokensUsed:   resp.Usage.TotalTokens,
		FinishReason: string(resp.Choices[0].FinishReason),
	}, nil
}

// Complete sends a simple completion request (helper for single prompts)
func (c *GeminiClient) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	messages := []ChatMessage{}

	if len(systemPrompt) > 0 && systemPrompt[0] != "" {
		messages = append(messages, ChatMessage{
			Role:    "system",
			Content: systemPrompt[0],
		})
	}

	messages = append(messages, ChatMessage{
		Role:    "user",
		Content: prompt,
	})

	resp, err := c.Chat(ctx, ChatRequest{Messages: messages})
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}
