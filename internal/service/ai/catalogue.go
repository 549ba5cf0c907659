package ai

import "github.com/Rhaast00/vervappweb/internal/domain"

// Static model catalogues for UI population. These are data, not behavior;
// the registry only validates requested ids against them.
var openAIModels = []domain.ModelInfo{
	{ID: "gpt-4", Name: "GPT-4", Description: "Most capable model for complex tasks"},
	{ID: "gpt-4-turbo", Name: "GPT-4 Turbo", Description: "Fast and capable model"},
	{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Description: "Fast model for simple tasks"},
	{ID: "gpt-4o", Name: "GPT-4o", Description: "Latest multimodal model"},
	{ID: "gpt-4o-mini", Name: "GPT-4o Mini", Description: "Smaller version of GPT-4o"},
}

var anthropicModels = []domain.ModelInfo{
	{ID: "claude-3-opus-20240229", Name: "Claude 3 Opus", Description: "Most powerful model for complex tasks"},
	{ID: "claude-3-sonnet-20240229", Name: "Claude 3 Sonnet", Description: "Balanced performance and cost"},
	{ID: "claude-3-haiku-20240307", Name: "Claude 3 Haiku", Description: "Fastest model for simple tasks"},
	{ID: "claude-3-5-sonnet-20241022", Name: "Claude 3.5 Sonnet", Description: "Latest improved model"},
}

var googleModels = []domain.ModelInfo{
	{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash", Description: "Latest model with fast performance"},
	{ID: "gemini-1.5-flash", Name: "Gemini 1.5 Flash", Description: "Fast model for quick responses"},
	{ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro", Description: "Advanced model for complex tasks"},
	{ID: "gemini-1.5-flash-8b", Name: "Gemini 1.5 Flash 8B", Description: "Lightweight model for basic tasks"},
}

// Catalogue returns the model catalogue for a provider, or nil for unknown
// provider names.
func Catalogue(provider string) []domain.ModelInfo {
	switch provider {
	case domain.ProviderOpenAI:
		return openAIModels
	case domain.ProviderAnthropic:
		return anthropicModels
	case domain.ProviderGoogle:
		return googleModels
	}
	return nil
}

// Catalogues returns every provider's catalogue keyed by provider name.
func Catalogues() map[string][]domain.ModelInfo {
	result := make(map[string][]domain.ModelInfo, len(domain.AllProviders()))
	for _, provider := range domain.AllProviders() {
		result[provider] = Catalogue(provider)
	}
	return result
}

// ValidModel reports whether the model id appears in the provider's
// catalogue. An empty id is always valid and resolves to the default.
func ValidModel(provider, modelID string) bool {
	if modelID == "" {
		return true
	}
	for _, model := range Catalogue(provider) {
		if model.ID == modelID {
			return true
		}
	}
	return false
}
