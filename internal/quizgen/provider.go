package quizgen

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

// Provider sends one prompt to a generative model and returns its raw reply.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(
		ctx,
		geminiModel,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		return "", errors.New("empty model reply")
	}
	return raw, nil
}
