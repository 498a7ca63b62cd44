package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/ports"
)

// openAIProvider speaks the chat completions protocol. It serves the
// hosted OpenAI API and any compatible endpoint (Ollama, vLLM, LM Studio)
// selected through the model's endpoint field.
type openAIProvider struct {
	client *openai.Client
	model  domain.ModelDefinition
}

func newOpenAIProvider(model domain.ModelDefinition, apiKey string) ports.Provider {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if model.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(model.Endpoint))
	}
	client := openai.NewClient(opts...)
	return &openAIProvider{
		client: &client,
		model:  model,
	}
}

func (p *openAIProvider) Name() string {
	return "openai"
}

func (p *openAIProvider) Model() domain.ModelDefinition {
	return p.model
}

func (p *openAIProvider) Generate(ctx context.Context, req ports.ProviderRequest) (ports.ProviderResponse, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model.ModelID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(req.Action)),
			openai.UserMessage(req.Input),
		},
		MaxTokens: openai.Int(int64(p.model.ResolvedMaxTokens())),
	}
	if p.model.Temperature != nil {
		params.Temperature = openai.Float(*p.model.Temperature)
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return ports.ProviderResponse{}, fmt.Errorf("chat completion request: %w", err)
	}
	if len(completion.Choices) == 0 {
		return ports.ProviderResponse{}, fmt.Errorf("chat completion: response contained no choices")
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return ports.ProviderResponse{}, fmt.Errorf("chat completion: response contained no text")
	}

	return ports.ProviderResponse{
		Output:  text,
		ModelID: completion.Model,
	}, nil
}

var _ ports.Provider = (*openAIProvider)(nil)
