package redesigner

import (
	"context"
	"errors"
	"testing"

	"github.com/Rhaast00/vervappweb/internal/domain"
	"github.com/Rhaast00/vervappweb/internal/service/ai"
	perrors "github.com/Rhaast00/vervappweb/pkg/errors"
	"go.uber.org/zap"
)

type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) Name() string               { return domain.ProviderOpenAI }
func (f *fakeClient) DefaultModel() string       { return "gpt-4" }
func (f *fakeClient) Models() []domain.ModelInfo { return nil }
func (f *fakeClient) Complete(_ context.Context, _ []ai.Message, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeResolver struct {
	client ai.CompletionProvider
}

func (f *fakeResolver) Resolve(_ context.Context, _, _ string) (ai.CompletionProvider, error) {
	return f.client, nil
}

type fakeSink struct {
	analysisErr error
	redesignErr error
	saved       int
}

func (f *fakeSink) SaveAnalysis(_ context.Context, _ string, _ *domain.WebsiteData) (string, error) {
	if f.analysisErr != nil {
		return "", f.analysisErr
	}
	return "analysis-1", nil
}

func (f *fakeSink) SaveRedesign(_ context.Context, _, analysisID string, _ domain.DesignStyle, _, _, _ string) (string, error) {
	if f.redesignErr != nil {
		return "", f.redesignErr
	}
	if analysisID != "analysis-1" {
		return "", errors.New("unexpected analysis id")
	}
	f.saved++
	return "redesign-1", nil
}

func request(style domain.DesignStyle) *domain.RedesignRequest {
	return &domain.RedesignRequest{
		WebsiteData: domain.WebsiteData{
			URL:    "https://example.com",
			Colors: []string{"#112233"},
			Fonts:  []domain.Font{{Name: "Inter"}},
		},
		DesignStyle: style,
	}
}

func newService(client ai.CompletionProvider, sink RedesignSink) *Service {
	return NewService(Dependencies{
		Resolver: &fakeResolver{client: client},
		Sink:     sink,
		Logger:   zap.NewNop(),
	})
}

func TestRedesignAISuccess(t *testing.T) {
	client := &fakeClient{response: `{"html": "<html>ai</html>", "css": "body{color:red}", "preview": "An AI redesign"}`}
	svc := newService(client, &fakeSink{})

	result := svc.Redesign(context.Background(), "user-1", request(domain.StyleMinimalist), domain.ProviderOpenAI, "")

	if result.HTML != "<html>ai</html>" {
		t.Errorf("expected AI output, got %q", result.HTML)
	}
	if result.ID != "redesign-1" {
		t.Errorf("expected persisted id attached, got %q", result.ID)
	}
}

func TestRedesignNoClientFallsBackToTemplate(t *testing.T) {
	svc := newService(nil, nil)

	for _, style := range domain.AllStyles() {
		result := svc.Redesign(context.Background(), "user-1", request(style), domain.ProviderOpenAI, "")
		if result == nil {
			t.Fatalf("style %s: redesign must never return nil", style)
		}
		if result.HTML == "" || result.CSS == "" || result.Preview == "" {
			t.Errorf("style %s: fallback bundle incomplete", style)
		}
	}
}

func TestRedesignProviderFailureFallsBack(t *testing.T) {
	client := &fakeClient{err: perrors.NewProviderCallError(domain.ProviderOpenAI, "gpt-4", errors.New("overloaded"))}
	svc := newService(client, nil)

	result := svc.Redesign(context.Background(), "user-1", request(domain.StyleBrutalist), domain.ProviderOpenAI, "")
	if result.HTML == "" || result.CSS == "" {
		t.Fatal("fallback must produce a complete bundle")
	}
}

func TestRedesignIncompleteAIResponseFallsBack(t *testing.T) {
	client := &fakeClient{response: `{"html": "<html></html>"}`}
	svc := newService(client, nil)

	result := svc.Redesign(context.Background(), "user-1", request(domain.StyleFlat), domain.ProviderOpenAI, "")
	if result.CSS == "" || result.Preview == "" {
		t.Fatal("incomplete AI output must be replaced by the template bundle")
	}
}

func TestRedesignIsDeterministicWithoutAI(t *testing.T) {
	svc := newService(nil, nil)
	req := request(domain.StyleGlassmorphism)

	first := svc.Redesign(context.Background(), "user-1", req, domain.ProviderOpenAI, "")
	second := svc.Redesign(context.Background(), "user-1", req, domain.ProviderOpenAI, "")

	if first.HTML != second.HTML || first.CSS != second.CSS {
		t.Error("fallback redesign should be deterministic")
	}
}

func TestRedesignPersistenceFailureDoesNotSurface(t *testing.T) {
	client := &fakeClient{response: `{"html": "<html></html>", "css": "body{}", "preview": "p"}`}
	svc := newService(client, &fakeSink{analysisErr: errors.New("db down")})

	result := svc.Redesign(context.Background(), "user-1", request(domain.StyleMaterial), domain.ProviderOpenAI, "")
	if result == nil || result.HTML == "" {
		t.Fatal("persistence failure must not affect the result")
	}
	if result.ID != "" {
		t.Errorf("id must not be attached when persistence failed, got %q", result.ID)
	}
}

func TestRedesignRedesignSaveFailureLeavesIDEmpty(t *testing.T) {
	client := &fakeClient{response: `{"html": "<html></html>", "css": "body{}", "preview": "p"}`}
	svc := newService(client, &fakeSink{redesignErr: errors.New("db down")})

	result := svc.Redesign(context.Background(), "user-1", request(domain.StyleNeumorphism), domain.ProviderOpenAI, "")
	if result.ID != "" {
		t.Errorf("id must not be attached when redesign save failed, got %q", result.ID)
	}
}
