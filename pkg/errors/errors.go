package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	CodeCredentialMissing = "CREDENTIAL_MISSING"
	CodeProviderCall      = "PROVIDER_CALL_ERROR"
	CodeResponseShape     = "RESPONSE_SHAPE_ERROR"
	CodePersistence       = "PERSISTENCE_ERROR"
	CodeCache             = "CACHE_ERROR"
)

type AppError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// CredentialMissingError is the one failure that reaches the caller: the user
// has no stored API key for the requested provider.
type CredentialMissingError struct {
	*AppError
	Provider string
}

func NewCredentialMissingError(provider string) *CredentialMissingError {
	return &CredentialMissingError{
		AppError: &AppError{
			Message: fmt.Sprintf("no API key stored for provider %q", provider),
			Code:    CodeCredentialMissing,
			Context: map[string]any{"provider": provider},
		},
		Provider: provider,
	}
}

func IsCredentialMissing(err error) bool {
	var target *CredentialMissingError
	return stderrors.As(err, &target)
}

// ProviderCallError wraps any transport, auth or vendor-side failure during a
// completion call. Orchestrators catch it and degrade; it never reaches users.
type ProviderCallError struct {
	*AppError
	Provider string
	Model    string
}

func NewProviderCallError(provider, model string, cause error) *ProviderCallError {
	return &ProviderCallError{
		AppError: &AppError{
			Message: fmt.Sprintf("%s completion failed", provider),
			Code:    CodeProviderCall,
			Context: map[string]any{"provider": provider, "model": model},
			Cause:   cause,
		},
		Provider: provider,
		Model:    model,
	}
}

func IsProviderCall(err error) bool {
	var target *ProviderCallError
	return stderrors.As(err, &target)
}

// ResponseShapeError covers unparseable or incomplete model output. Treated
// exactly like ProviderCallError for fallback purposes.
type ResponseShapeError struct {
	*AppError
	Reason string
}

func NewResponseShapeError(reason string, cause error) *ResponseShapeError {
	return &ResponseShapeError{
		AppError: &AppError{
			Message: fmt.Sprintf("unusable model response: %s", reason),
			Code:    CodeResponseShape,
			Context: map[string]any{"reason": reason},
			Cause:   cause,
		},
		Reason: reason,
	}
}

func IsResponseShape(err error) bool {
	var target *ResponseShapeError
	return stderrors.As(err, &target)
}

type PersistenceError struct {
	*AppError
	Operation string
}

func NewPersistenceError(operation string, cause error) *PersistenceError {
	return &PersistenceError{
		AppError: &AppError{
			Message: fmt.Sprintf("persistence %s failed", operation),
			Code:    CodePersistence,
			Context: map[string]any{"operation": operation},
			Cause:   cause,
		},
		Operation: operation,
	}
}

type CacheError struct {
	*AppError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		AppError: &AppError{
			Message: message,
			Code:    CodeCache,
			Context: map[string]any{"operation": operation, "key": key},
			Cause:   cause,
		},
		Operation: operation,
		Key:       key,
	}
}
