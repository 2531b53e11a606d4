package cmd

import (
	"fmt"
	"os"

	"github.com/mercalabs/shelfscan/internal/vision"
	"github.com/mercalabs/shelfscan/internal/vision/demo"
	"github.com/mercalabs/shelfscan/internal/vision/gemini"
	"github.com/mercalabs/shelfscan/internal/vision/ollama"
	"github.com/mercalabs/shelfscan/internal/vision/openai"
)

// newProvider resolves the vision provider for a run. The Gemini key
// comes from the flag, then the GEMINI_API_KEY environment variable
// (which godotenv may have loaded from .env). Demo mode needs no key.
func newProvider(name, apiKey string, demoMode bool) (vision.Provider, string, error) {
	if demoMode {
		return demo.New(), "demo", nil
	}

	switch name {
	case "", "gemini":
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return nil, "", fmt.Errorf("gemini API key not set: use --api-key, the GEMINI_API_KEY variable, a .env file, or --demo")
		}
		return gemini.New(apiKey), "gemini", nil
	case "ollama":
		return ollama.New(), "ollama", nil
	case "openai":
		return openai.New(), "openai", nil
	}

	return nil, "", fmt.Errorf("unsupported provider: %s", name)
}

// defaultModelFor returns the provider's default model when --model is not given.
func defaultModelFor(provider string) string {
	switch provider {
	case "ollama":
		if model := os.Getenv("OLLAMA_MODEL"); model != "" {
			return model
		}
		return ollama.DefaultModel
	case "openai":
		if model := os.Getenv("OPENAI_MODEL"); model != "" {
			return model
		}
		return openai.DefaultModel
	}
	return vision.DefaultModel
}
