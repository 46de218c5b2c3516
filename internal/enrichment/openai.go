package enrichment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"

	"github.com/JaimeStill/steward/internal/classifier"
	"github.com/JaimeStill/steward/pkg/formatting"
)

// OpenAI is an Enricher backed by an OpenAI-compatible chat completion API.
type OpenAI struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
	logger      *slog.Logger
}

// NewOpenAI creates an enricher from a finalized Config. BaseURL overrides
// the default endpoint for local or alternative providers.
func NewOpenAI(cfg Config, logger *slog.Logger) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAI{
		api:         openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: float32(cfg.Temperature),
		logger:      logger.With("system", "enrichment"),
	}
}

// Suggest asks the model to refine a weak classification.
func (o *OpenAI) Suggest(ctx context.Context, filename string, result classifier.Result) (*Suggestion, error) {
	prompt, err := BuildPrompt(filename, result)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSuggestFailed, err)
	}

	resp, err := o.api.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   o.maxTokens,
			Temperature: o.temperature,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: chat completion: %w", ErrSuggestFailed, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrSuggestFailed)
	}

	s, err := formatting.Parse[Suggestion](resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSuggestFailed, err)
	}

	o.logger.Debug(
		"suggestion received",
		"filename", filename,
		"content_type", s.ContentType,
		"confidence", s.Confidence,
	)
	return &s, nil
}
