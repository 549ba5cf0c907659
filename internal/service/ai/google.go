package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rhaast00/vervappweb/internal/domain"
	perrors "github.com/Rhaast00/vervappweb/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultGoogleModel = "gemini-2.0-flash"

// GoogleProvider wraps the Gemini client.
type GoogleProvider struct {
	client       *genai.Client
	defaultModel string
	logger       *zap.Logger
}

func NewGoogleProvider(ctx context.Context, apiKey string, logger *zap.Logger) *GoogleProvider {
	if apiKey == "" {
		return nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Error("Failed to create Gemini client", zap.Error(err))
		return nil
	}
	return &GoogleProvider{
		client:       client,
		defaultModel: defaultGoogleModel,
		logger:       logger,
	}
}

func (g *GoogleProvider) Name() string {
	return domain.ProviderGoogle
}

func (g *GoogleProvider) DefaultModel() string {
	return g.defaultModel
}

func (g *GoogleProvider) Models() []domain.ModelInfo {
	return googleModels
}

func (g *GoogleProvider) Complete(ctx context.Context, messages []Message, modelID string) (string, error) {
	modelName := selectModel(modelID, g.defaultModel)
	system, user := splitMessages(messages)

	g.logger.Debug("Generating with Gemini", zap.String("model", modelName))

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if system != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, modelName, []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: user},
			},
		},
	}, genConfig)
	if err != nil {
		g.logger.Error("Gemini generation failed", zap.String("model", modelName), zap.Error(err))
		return "", perrors.NewProviderCallError(domain.ProviderGoogle, modelName, err)
	}

	text := extractTextFromGeminiResponse(resp)
	if text == "" {
		err := fmt.Errorf("empty response from Gemini")
		return "", perrors.NewProviderCallError(domain.ProviderGoogle, modelName, err)
	}

	g.logger.Debug("Gemini response received", zap.Int("length", len(text)))
	return text, nil
}

func extractTextFromGeminiResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}

	return strings.Join(texts, "")
}
