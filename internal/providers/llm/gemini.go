package llm

// Gemini is reached through its OpenAI compatibility endpoint, so the
// whole provider is a thin preset over OpenAICompatible.
const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

func NewGemini(apiKey, model string) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    geminiBaseURL,
		APIKey:     apiKey,
		Model:      model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})
}
