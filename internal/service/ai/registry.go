package ai

import (
	"context"
	"sync"

	"github.com/Rhaast00/vervappweb/internal/domain"
	"go.uber.org/zap"
)

// KeySource supplies per-user API keys for a provider. The registry does not
// care where the key lives; the credentials package implements this against
// Postgres.
type KeySource interface {
	Get(ctx context.Context, userID, provider string) (key string, found bool, err error)
}

type clientKey struct {
	userID   string
	provider string
}

// Registry builds and caches provider clients per (user, provider) pair. Only
// successfully constructed clients are cached, so a user who adds a key after
// a failed resolve gets a fresh build on the next call.
type Registry struct {
	keys   KeySource
	logger *zap.Logger

	mu      sync.RWMutex
	clients map[clientKey]CompletionProvider
}

func NewRegistry(keys KeySource, logger *zap.Logger) *Registry {
	return &Registry{
		keys:    keys,
		logger:  logger,
		clients: make(map[clientKey]CompletionProvider),
	}
}

// Resolve returns a ready client for the user and provider, or (nil, nil)
// when the user has no usable key. Key store failures are logged and treated
// the same as a missing key so a storage hiccup degrades instead of erroring.
func (r *Registry) Resolve(ctx context.Context, userID, provider string) (CompletionProvider, error) {
	if !domain.ValidProvider(provider) {
		return nil, nil
	}

	key := clientKey{userID: userID, provider: provider}

	r.mu.RLock()
	client, ok := r.clients[key]
	r.mu.RUnlock()
	if ok {
		return client, nil
	}

	apiKey, found, err := r.keys.Get(ctx, userID, provider)
	if err != nil {
		r.logger.Warn("Key lookup failed, treating provider as unavailable",
			zap.String("user", userID),
			zap.String("provider", provider),
			zap.Error(err),
		)
		return nil, nil
	}
	if !found || apiKey == "" {
		return nil, nil
	}

	client = r.build(ctx, provider, apiKey)
	if client == nil {
		return nil, nil
	}

	r.mu.Lock()
	// Another goroutine may have built the same client in the meantime;
	// prefer the existing one so callers share a single instance.
	if existing, ok := r.clients[key]; ok {
		client = existing
	} else {
		r.clients[key] = client
	}
	r.mu.Unlock()

	r.logger.Info("Provider client initialized",
		zap.String("user", userID),
		zap.String("provider", provider),
	)
	return client, nil
}

func (r *Registry) build(ctx context.Context, provider, apiKey string) CompletionProvider {
	switch provider {
	case domain.ProviderOpenAI:
		if p := NewOpenAIProvider(apiKey, r.logger); p != nil {
			return p
		}
	case domain.ProviderAnthropic:
		if p := NewAnthropicProvider(apiKey, r.logger); p != nil {
			return p
		}
	case domain.ProviderGoogle:
		if p := NewGoogleProvider(ctx, apiKey, r.logger); p != nil {
			return p
		}
	}
	return nil
}

// ClearProvider drops the cached client for one user and provider. Called
// after a key update so the next resolve picks up the new credential.
func (r *Registry) ClearProvider(userID, provider string) {
	r.mu.Lock()
	delete(r.clients, clientKey{userID: userID, provider: provider})
	r.mu.Unlock()
}

// Clear drops every cached client.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.clients = make(map[clientKey]CompletionProvider)
	r.mu.Unlock()
}
