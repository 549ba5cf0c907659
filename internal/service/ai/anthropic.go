package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rhaast00/vervappweb/internal/domain"
	perrors "github.com/Rhaast00/vervappweb/pkg/errors"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"
)

const (
	defaultAnthropicModel   = "claude-3-opus-20240229"
	anthropicMaxOutputToken = 4096
)

// AnthropicProvider wraps the Claude messages client. Claude takes the system
// prompt as a dedicated parameter rather than a conversation message.
type AnthropicProvider struct {
	client       *anthropic.Client
	defaultModel string
	logger       *zap.Logger
}

func NewAnthropicProvider(apiKey string, logger *zap.Logger) *AnthropicProvider {
	if apiKey == "" {
		return nil
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicProvider{
		client:       &client,
		defaultModel: defaultAnthropicModel,
		logger:       logger,
	}
}

func (a *AnthropicProvider) Name() string {
	return domain.ProviderAnthropic
}

func (a *AnthropicProvider) DefaultModel() string {
	return a.defaultModel
}

func (a *AnthropicProvider) Models() []domain.ModelInfo {
	return anthropicModels
}

func (a *AnthropicProvider) Complete(ctx context.Context, messages []Message, modelID string) (string, error) {
	modelName := selectModel(modelID, a.defaultModel)
	system, user := splitMessages(messages)

	a.logger.Debug("Generating with Anthropic", zap.String("model", modelName))

	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelName),
		MaxTokens: anthropicMaxOutputToken,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		a.logger.Error("Anthropic generation failed", zap.String("model", modelName), zap.Error(err))
		return "", perrors.NewProviderCallError(domain.ProviderAnthropic, modelName, err)
	}

	text := extractTextFromAnthropicResponse(resp)
	if text == "" {
		err := fmt.Errorf("empty response from Anthropic")
		return "", perrors.NewProviderCallError(domain.ProviderAnthropic, modelName, err)
	}

	a.logger.Debug("Anthropic response received", zap.Int("length", len(text)))
	return text, nil
}

func extractTextFromAnthropicResponse(resp *anthropic.Message) string {
	if resp == nil || len(resp.Content) == 0 {
		return ""
	}

	var texts []string
	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != "" {
			texts = append(texts, block.Text)
		}
	}

	return strings.Join(texts, "")
}
