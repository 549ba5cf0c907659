package ai

import (
	"context"
	"fmt"

	"github.com/Rhaast00/vervappweb/internal/domain"
	perrors "github.com/Rhaast00/vervappweb/pkg/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

const defaultOpenAIModel = "gpt-4"

// OpenAIProvider wraps the OpenAI chat completion client.
type OpenAIProvider struct {
	client       *openai.Client
	defaultModel string
	logger       *zap.Logger
}

func NewOpenAIProvider(apiKey string, logger *zap.Logger) *OpenAIProvider {
	if apiKey == "" {
		return nil
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{
		client:       &client,
		defaultModel: defaultOpenAIModel,
		logger:       logger,
	}
}

func (o *OpenAIProvider) Name() string {
	return domain.ProviderOpenAI
}

func (o *OpenAIProvider) DefaultModel() string {
	return o.defaultModel
}

func (o *OpenAIProvider) Models() []domain.ModelInfo {
	return openAIModels
}

func (o *OpenAIProvider) Complete(ctx context.Context, messages []Message, modelID string) (string, error) {
	modelName := selectModel(modelID, o.defaultModel)
	system, user := splitMessages(messages)

	o.logger.Debug("Generating with OpenAI", zap.String("model", modelName))

	var model openai.ChatModel
	switch modelName {
	case "gpt-4":
		model = openai.ChatModelGPT4
	case "gpt-4-turbo":
		model = openai.ChatModelGPT4Turbo
	case "gpt-3.5-turbo":
		model = openai.ChatModelGPT3_5Turbo
	case "gpt-4o":
		model = openai.ChatModelGPT4o
	case "gpt-4o-mini":
		model = openai.ChatModelGPT4oMini
	default:
		model = openai.ChatModel(modelName)
	}

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		o.logger.Error("OpenAI generation failed", zap.String("model", modelName), zap.Error(err))
		return "", perrors.NewProviderCallError(domain.ProviderOpenAI, modelName, err)
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("no choices in OpenAI response")
		return "", perrors.NewProviderCallError(domain.ProviderOpenAI, modelName, err)
	}

	text := resp.Choices[0].Message.Content

	o.logger.Debug("OpenAI response received",
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return text, nil
}
