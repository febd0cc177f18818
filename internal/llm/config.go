package llm

import "os"

// defaultModel balances quality against the latency budget of interactive
// editing; generation calls block the wizard's preview.
const defaultModel = "gemini-1.5-flash"

// Config holds model selection for the Gemini client.
type Config struct {
	Model       string
	Temperature float32
}

// DefaultConfig returns the built-in model configuration. GEMINI_MODEL
// overrides the model name when set.
func DefaultConfig() *Config {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &Config{
		Model:       model,
		Temperature: 0.1, // Low temperature for consistent output
	}
}
