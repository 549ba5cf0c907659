package domain

// Supported provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
)

func AllProviders() []string {
	return []string{ProviderOpenAI, ProviderAnthropic, ProviderGoogle}
}

func ValidProvider(name string) bool {
	switch name {
	case ProviderOpenAI, ProviderAnthropic, ProviderGoogle:
		return true
	}
	return false
}

// ModelInfo is one catalogue entry for UI model-selection dropdowns.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
