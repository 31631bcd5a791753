package tutor

// Config holds generation settings for tutor requests.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Language is the language explanations are written in. The question
	// bank is Spanish, so that is the default.
	Language string
}

// DefaultConfig returns the settings used by the TUI.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.3,
		Language:    "Spanish",
	}
}
