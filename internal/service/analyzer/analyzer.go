// Package analyzer orchestrates website design analysis: credential check,
// cached result lookup, page snapshot, AI extraction and deterministic
// fallback, plus best-effort persistence.
package analyzer

import (
	"context"
	"time"

	"github.com/Rhaast00/vervappweb/internal/domain"
	"github.com/Rhaast00/vervappweb/internal/prompt"
	"github.com/Rhaast00/vervappweb/internal/service/ai"
	"github.com/Rhaast00/vervappweb/internal/service/snapshot"
	"github.com/Rhaast00/vervappweb/internal/util"
	perrors "github.com/Rhaast00/vervappweb/pkg/errors"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// CredentialStore is the subset of the credentials store the analyzer needs.
type CredentialStore interface {
	Get(ctx context.Context, userID, provider string) (key string, found bool, err error)
}

// ClientResolver yields a ready completion client, or nil when the user has
// no usable key for the provider.
type ClientResolver interface {
	Resolve(ctx context.Context, userID, provider string) (ai.CompletionProvider, error)
}

// AnalysisSink persists finished analyses.
type AnalysisSink interface {
	SaveAnalysis(ctx context.Context, userID string, data *domain.WebsiteData) (string, error)
}

// AnalysisCache caches analyses per URL and provider.
type AnalysisCache interface {
	GetAnalysis(ctx context.Context, url, provider string) *domain.WebsiteData
	SetAnalysis(ctx context.Context, url, provider string, data *domain.WebsiteData, ttl time.Duration) error
}

// SnapshotFetcher samples a live page for prompt material.
type SnapshotFetcher interface {
	Fetch(ctx context.Context, url string) (*snapshot.Snapshot, error)
}

// Dependencies wires the analyzer. Sink, Cache, Fetcher and Breaker are
// optional; a nil dependency disables that concern.
type Dependencies struct {
	Credentials CredentialStore
	Resolver    ClientResolver
	Sink        AnalysisSink
	Cache       AnalysisCache
	Fetcher     SnapshotFetcher
	Breaker     *util.CircuitBreaker
	CacheTTL    time.Duration
	Logger      *zap.Logger
}

type Service struct {
	deps Dependencies
	wg   conc.WaitGroup
}

func NewService(deps Dependencies) *Service {
	return &Service{deps: deps}
}

// Analyze produces design data for a URL. The only caller-visible failure is
// a missing credential (or a credential store outage); every AI-side problem
// degrades to the deterministic baseline.
func (s *Service) Analyze(ctx context.Context, userID, rawURL, provider, modelID string) (*domain.WebsiteData, error) {
	url := util.NormalizeURL(rawURL)

	_, found, err := s.deps.Credentials.Get(ctx, userID, provider)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, perrors.NewCredentialMissingError(provider)
	}

	if s.deps.Cache != nil {
		if cached := s.deps.Cache.GetAnalysis(ctx, url, provider); cached != nil {
			s.deps.Logger.Debug("Analysis cache hit", zap.String("url", url))
			return cached, nil
		}
	}

	data := baselineData(url)

	var snap *snapshot.Snapshot
	if s.deps.Fetcher != nil {
		snap, err = s.deps.Fetcher.Fetch(ctx, url)
		if err != nil {
			s.deps.Logger.Warn("Page snapshot failed, analyzing without page material",
				zap.String("url", url),
				zap.Error(err),
			)
			snap = nil
		}
	}

	if aiData := s.tryAI(ctx, userID, url, provider, modelID, snap); aiData != nil {
		mergeAnalysis(data, aiData)
	}

	s.persistAsync(userID, url, provider, data)

	return data, nil
}

// tryAI runs the model extraction. Any failure returns nil; callers fall back
// to the baseline.
func (s *Service) tryAI(ctx context.Context, userID, url, provider, modelID string, snap *snapshot.Snapshot) *domain.WebsiteData {
	if s.deps.Breaker != nil && !s.deps.Breaker.CanExecute() {
		s.deps.Logger.Warn("Circuit breaker open, skipping AI analysis", zap.String("provider", provider))
		return nil
	}

	client, err := s.deps.Resolver.Resolve(ctx, userID, provider)
	if err != nil || client == nil {
		return nil
	}

	vars := prompt.AnalysisVars{URL: url}
	if !snap.IsEmpty() {
		vars.Title = snap.Title
		vars.MetaDescription = snap.MetaDescription
		vars.CSSSample = snap.CSSSample
		vars.BodySample = snap.BodySample
	}

	messages := ai.SystemUser(prompt.AnalysisSystem, prompt.BuildAnalysis(vars))

	raw, err := client.Complete(ctx, messages, modelID)
	if err != nil {
		s.deps.Logger.Error("AI analysis failed, using baseline",
			zap.String("url", url),
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

	parsed, err := prompt.DecodeAnalysis(raw)
	if err != nil {
		s.deps.Logger.Warn("AI analysis response unusable, using baseline",
			zap.String("url", url),
			zap.Error(err),
		)
		return nil
	}
	return parsed
}

// persistAsync saves and caches the analysis in the background so callers do
// not wait on storage. Failures are logged, never surfaced.
func (s *Service) persistAsync(userID, url, provider string, data *domain.WebsiteData) {
	if s.deps.Sink == nil && s.deps.Cache == nil {
		return
	}

	// Detached context: the HTTP request may finish before the write does.
	s.wg.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if s.deps.Sink != nil {
			if _, err := s.deps.Sink.SaveAnalysis(ctx, userID, data); err != nil {
				s.deps.Logger.Error("Analysis persistence failed", zap.String("url", url), zap.Error(err))
			}
		}
		if s.deps.Cache != nil {
			if err := s.deps.Cache.SetAnalysis(ctx, url, provider, data, s.deps.CacheTTL); err != nil {
				s.deps.Logger.Warn("Analysis cache write failed", zap.String("url", url), zap.Error(err))
			}
		}
	})
}

// Close drains in-flight persistence work.
func (s *Service) Close() {
	s.wg.Wait()
}

// baselineData is the deterministic analysis every request starts from. AI
// output overwrites the fields it fills.
func baselineData(url string) *domain.WebsiteData {
	return &domain.WebsiteData{
		URL:    url,
		Colors: []string{"#000000", "#ffffff"},
		Fonts:  []domain.Font{{Name: "Unknown"}},
		Layout: domain.Layout{Text: "Could not analyze layout"},
		Elements: []domain.Element{
			{Type: "page", Description: "Page structure could not be analyzed"},
		},
	}
}

// mergeAnalysis overlays non-empty AI fields onto the baseline. Empty arrays
// count as absent so partial model output never erases baseline values.
func mergeAnalysis(base, aiData *domain.WebsiteData) {
	if len(aiData.Colors) > 0 {
		base.Colors = aiData.Colors
	}
	if len(aiData.Fonts) > 0 {
		base.Fonts = aiData.Fonts
	}
	if !aiData.Layout.IsZero() {
		base.Layout = aiData.Layout
	}
	if len(aiData.Elements) > 0 {
		base.Elements = aiData.Elements
	}
	if len(aiData.Images) > 0 {
		base.Images = aiData.Images
	}
	if aiData.ContentStructure != nil {
		base.ContentStructure = aiData.ContentStructure
	}
}
