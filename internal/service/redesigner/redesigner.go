// Package redesigner orchestrates redesign generation: AI first, static
// style templates as the guaranteed fallback. Redesign never fails for
// AI or storage reasons.
package redesigner

import (
	"context"

	"github.com/Rhaast00/vervappweb/internal/domain"
	"github.com/Rhaast00/vervappweb/internal/prompt"
	"github.com/Rhaast00/vervappweb/internal/redesign"
	"github.com/Rhaast00/vervappweb/internal/service/ai"
	"github.com/Rhaast00/vervappweb/internal/util"
	perrors "github.com/Rhaast00/vervappweb/pkg/errors"
	"go.uber.org/zap"
)

// ClientResolver yields a ready completion client, or nil when the user has
// no usable key for the provider.
type ClientResolver interface {
	Resolve(ctx context.Context, userID, provider string) (ai.CompletionProvider, error)
}

// RedesignSink persists redesigns with their source analysis.
type RedesignSink interface {
	SaveAnalysis(ctx context.Context, userID string, data *domain.WebsiteData) (string, error)
	SaveRedesign(ctx context.Context, userID, analysisID string, style domain.DesignStyle, html, css, preview string) (string, error)
}

// Dependencies wires the redesigner. Sink and Breaker are optional.
type Dependencies struct {
	Resolver ClientResolver
	Sink     RedesignSink
	Breaker  *util.CircuitBreaker
	Logger   *zap.Logger
}

type Service struct {
	deps Dependencies
}

func NewService(deps Dependencies) *Service {
	return &Service{deps: deps}
}

// Redesign generates a styled redesign of an analyzed website. AI output is
// used when a client is available and responds usably; otherwise the static
// template bundle for the style is returned. Persistence is best-effort and
// synchronous so a successful save can attach the record id.
func (s *Service) Redesign(ctx context.Context, userID string, req *domain.RedesignRequest, provider, modelID string) *domain.RedesignResult {
	result := s.tryAI(ctx, userID, req, provider, modelID)
	if result == nil {
		s.deps.Logger.Info("Using template fallback for redesign",
			zap.String("style", string(req.DesignStyle)),
			zap.String("provider", provider),
		)
		result = redesign.Fallback(&req.WebsiteData, req.DesignStyle)
	}

	s.persist(ctx, userID, req, result)
	return result
}

func (s *Service) tryAI(ctx context.Context, userID string, req *domain.RedesignRequest, provider, modelID string) *domain.RedesignResult {
	if s.deps.Breaker != nil && !s.deps.Breaker.CanExecute() {
		s.deps.Logger.Warn("Circuit breaker open, skipping AI redesign", zap.String("provider", provider))
		return nil
	}

	client, err := s.deps.Resolver.Resolve(ctx, userID, provider)
	if err != nil || client == nil {
		return nil
	}

	messages := ai.SystemUser(prompt.RedesignSystem, prompt.BuildRedesign(&req.WebsiteData, req.DesignStyle))

	raw, err := client.Complete(ctx, messages, modelID)
	if err != nil {
		s.deps.Logger.Error("AI redesign failed, falling back to template",
			zap.String("style", string(req.DesignStyle)),
			zap.String("provider", provider),
			zap.Error(err),
		)
		if s.deps.Breaker != nil && perrors.IsProviderCall(err) {
			s.deps.Breaker.RecordFailure()
		}
		return nil
	}

	if s.deps.Breaker != nil {
		s.deps.Breaker.RecordSuccess()
	}

	result, err := prompt.DecodeRedesign(raw)
	if err != nil {
		s.deps.Logger.Warn("AI redesign response unusable, falling back to template",
			zap.String("style", string(req.DesignStyle)),
			zap.Error(err),
		)
		return nil
	}
	return result
}

// persist saves the analysis then the redesign. The record id is attached to
// the result only when both writes succeed; failures are logged and ignored.
func (s *Service) persist(ctx context.Context, userID string, req *domain.RedesignRequest, result *domain.RedesignResult) {
	if s.deps.Sink == nil {
		return
	}

	analysisID, err := s.deps.Sink.SaveAnalysis(ctx, userID, &req.WebsiteData)
	if err != nil {
		s.deps.Logger.Error("Analysis persistence failed before redesign save",
			zap.String("url", req.WebsiteData.URL),
			zap.Error(err),
		)
		return
	}

	redesignID, err := s.deps.Sink.SaveRedesign(ctx, userID, analysisID, req.DesignStyle,
		result.HTML, result.CSS, result.Preview)
	if err != nil {
		s.deps.Logger.Error("Redesign persistence failed",
			zap.String("analysis_id", analysisID),
			zap.Error(err),
		)
		return
	}

	result.ID = redesignID
}
