package ai

import (
	"context"

	"github.com/Rhaast00/vervappweb/internal/domain"
)

// Role identifies the author of a prompt message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one entry of a provider-neutral conversation. Adapters translate
// the system/user pair into each vendor's native call shape.
type Message struct {
	Role    Role
	Content string
}

// SystemUser builds the canonical two-message conversation every completion
// in this system uses.
func SystemUser(system, user string) []Message {
	return []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	}
}

// CompletionProvider normalizes "send a system+user message, get back
// assistant text" across vendor SDKs. Complete returns the raw assistant
// text, unparsed; any transport, auth or vendor error comes back as a
// *perrors.ProviderCallError.
type CompletionProvider interface {
	Name() string
	DefaultModel() string
	Models() []domain.ModelInfo
	Complete(ctx context.Context, messages []Message, modelID string) (string, error)
}

// splitMessages extracts the system and user contents from a conversation.
// Later duplicates of a role overwrite earlier ones; exactly one of each is
// expected.
func splitMessages(messages []Message) (system, user string) {
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			system = msg.Content
		case RoleUser:
			user = msg.Content
		}
	}
	return system, user
}

// selectModel picks the requested model id, falling back to the provider
// default when none is given.
func selectModel(requested, fallback string) string {
	if requested != "" {
		return requested
	}
	return fallback
}
