package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/mercalabs/shelfscan/internal/vision"
)

// Gemini is a provider for Google Gemini vision models.
type Gemini struct {
	apiKey string
}

// New returns a new Gemini provider using the given API key.
func New(apiKey string) *Gemini {
	return &Gemini{apiKey: apiKey}
}

// ExtractText sends the prompt and image to Gemini and returns the raw text answer.
func (g *Gemini) ExtractText(ctx context.Context, config vision.Config) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini API key not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(config.Model)
	model.SetTemperature(float32(config.Temperature))
	if config.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(config.MaxTokens))
	}

	// genai wants the bare image subtype, e.g. "jpeg" for "image/jpeg".
	format := strings.TrimPrefix(config.MIMEType, "image/")

	resp, err := model.GenerateContent(ctx,
		genai.Text(config.Prompt),
		genai.ImageData(format, config.Image),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}

	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return string(txt), nil
	}

	return "", fmt.Errorf("unexpected response format from Gemini")
}
