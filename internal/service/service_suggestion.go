package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/models"
)

// Chat-completion wire types for the OpenAI-compatible backend. Only the
// fields this service reads or writes are declared.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// suggestionService is the concrete implementation of [SuggestionService].
// It talks to an OpenAI-compatible chat-completions endpoint over a shared
// resty client. When no API key is configured every call fails with
// [ErrSuggestionsUnavailable] so handlers can answer 503.
type suggestionService struct {
	client *resty.Client
	model  string

	// enabled is false when no API key was configured at startup.
	enabled bool

	logger *logger.Logger
}

// NewSuggestionService constructs a [SuggestionService] from cfg. The
// client is built once at startup; per-request state lives in the resty
// request objects, so the service is safe for concurrent use.
func NewSuggestionService(cfg config.AI, logger *logger.Logger) SuggestionService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &suggestionService{
		client:  client,
		model:   cfg.Model,
		enabled: cfg.APIKey != "",
		logger:  logger,
	}
}

// GenerateDescription asks the completion backend for a short actionable
// description matching the given todo title.
func (s *suggestionService) GenerateDescription(ctx context.Context, title string) (string, error) {
	const system = "You are a helpful assistant that helps users create detailed todo descriptions. " +
		"Generate a concise, actionable description for the given todo title. " +
		"Keep it brief (1-2 sentences) and focused on what needs to be done."

	return s.complete(ctx, chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: fmt.Sprintf("Generate a brief description for this todo: %q", title)},
		},
		MaxTokens:   100,
		Temperature: 0.7,
	})
}

// ImproveTitle asks the completion backend to rewrite the title into a
// shorter, more actionable form.
func (s *suggestionService) ImproveTitle(ctx context.Context, title string) (string, error) {
	const system = "You are a helpful assistant that helps users write better todo items. " +
		"Make the todo title more specific, actionable, and clear. " +
		"Keep it concise (under 10 words). Return only the improved title, nothing else."

	return s.complete(ctx, chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: fmt.Sprintf("Improve this todo title: %q", title)},
		},
		MaxTokens:   50,
		Temperature: 0.7,
	})
}

// GenerateSuggestions asks for an improved title and description in one
// round-trip, using the backend's JSON response mode. When the model omits
// a field the caller's original title and an empty description are kept.
func (s *suggestionService) GenerateSuggestions(ctx context.Context, title, description string) (models.SuggestionResponse, error) {
	const system = "You are a helpful assistant that helps users create better todo items. " +
		"Given a todo title and optional description, suggest an improved version. " +
		"Return a JSON object with \"title\" and \"description\" fields. " +
		"The title should be actionable and concise (under 10 words). " +
		"The description should be brief (1-2 sentences) and focused."

	userContent := fmt.Sprintf("Create a todo with title and description for: %q", title)
	if description != "" {
		userContent = fmt.Sprintf("Improve this todo:\nTitle: %q\nDescription: %q", title, description)
	}

	content, err := s.complete(ctx, chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: userContent},
		},
		MaxTokens:      150,
		Temperature:    0.7,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return models.SuggestionResponse{}, err
	}

	var suggestion models.SuggestionResponse
	if err := json.Unmarshal([]byte(content), &suggestion); err != nil {
		logger.FromContext(ctx).Err(err).Msg("completion returned malformed JSON")
		return models.SuggestionResponse{}, ErrSuggestionFailed
	}
	if suggestion.Title == "" {
		suggestion.Title = title
	}

	return suggestion, nil
}

// complete sends one chat-completion request and returns the trimmed text
// of the first choice.
func (s *suggestionService) complete(ctx context.Context, reqBody chatCompletionRequest) (string, error) {
	log := logger.FromContext(ctx)

	if !s.enabled {
		return "", ErrSuggestionsUnavailable
	}

	var completion chatCompletionResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&completion).
		Post("/chat/completions")
	if err != nil {
		log.Err(err).Msg("completion request failed")
		return "", ErrSuggestionFailed
	}
	if resp.StatusCode() != http.StatusOK {
		log.Error().Int("status", resp.StatusCode()).Msg("completion backend returned non-200")
		return "", ErrSuggestionFailed
	}
	if len(completion.Choices) == 0 {
		log.Error().Msg("completion response has no choices")
		return "", ErrSuggestionFailed
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
