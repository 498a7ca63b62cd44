package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/ports"
)

type anthropicProvider struct {
	client *anthropic.Client
	model  domain.ModelDefinition
}

func newAnthropicProvider(model domain.ModelDefinition, apiKey string) ports.Provider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if model.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(model.Endpoint))
	}
	client := anthropic.NewClient(opts...)
	return &anthropicProvider{
		client: &client,
		model:  model,
	}
}

func (p *anthropicProvider) Name() string {
	return "anthropic"
}

func (p *anthropicProvider) Model() domain.ModelDefinition {
	return p.model
}

func (p *anthropicProvider) Generate(ctx context.Context, req ports.ProviderRequest) (ports.ProviderResponse, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model.ModelID),
		MaxTokens: int64(p.model.ResolvedMaxTokens()),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt(req.Action)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Input)),
		},
	}
	if p.model.Temperature != nil {
		params.Temperature = anthropic.Float(*p.model.Temperature)
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return ports.ProviderResponse{}, fmt.Errorf("anthropic request: %w", err)
	}

	var output strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			output.WriteString(block.AsText().Text)
		}
	}

	text := strings.TrimSpace(output.String())
	if text == "" {
		return ports.ProviderResponse{}, fmt.Errorf("anthropic: response contained no text")
	}

	return ports.ProviderResponse{
		Output:  text,
		ModelID: string(message.Model),
	}, nil
}

var _ ports.Provider = (*anthropicProvider)(nil)
