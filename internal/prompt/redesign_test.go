package prompt

import (
	"strings"
	"testing"

	"github.com/Rhaast00/vervappweb/internal/domain"
)

func sampleWebsiteData() *domain.WebsiteData {
	return &domain.WebsiteData{
		URL:    "https://example.com",
		Colors: []string{"#1a1a2e", "#e94560"},
		Fonts: []domain.Font{
			{Name: "Inter"},
			{Name: "Georgia", Purpose: "headings"},
		},
		Layout: domain.Layout{Text: "Single column with sticky header"},
		Elements: []domain.Element{
			{Type: "nav", Description: "Top navigation bar"},
		},
	}
}

func TestBuildRedesignEmbedsAnalysis(t *testing.T) {
	text := BuildRedesign(sampleWebsiteData(), domain.StyleMinimalist)

	for _, want := range []string{
		"https://example.com",
		"#1a1a2e, #e94560",
		"Inter, Georgia",
		"Single column with sticky header",
		"MINIMALIST",
		"375px+",
		"768px+",
		"1024px+",
		"1440px+",
		"NEVER use external URLs",
		`"html"`,
		`"css"`,
		`"preview"`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("redesign prompt missing %q", want)
		}
	}
}

func TestBuildRedesignUsesStyleDescriptor(t *testing.T) {
	for _, style := range domain.AllStyles() {
		descriptor := DescriptorFor(style)
		text := BuildRedesign(sampleWebsiteData(), style)
		if !strings.Contains(text, descriptor.Description) {
			t.Errorf("style %s: prompt missing descriptor description", style)
		}
		if !strings.Contains(text, descriptor.ColorPalette) {
			t.Errorf("style %s: prompt missing color palette", style)
		}
	}
}

func TestBuildRedesignSparseData(t *testing.T) {
	data := &domain.WebsiteData{URL: "https://example.com"}
	text := BuildRedesign(data, domain.StyleFlat)

	if !strings.Contains(text, "Not provided") {
		t.Error("sparse data should render as Not provided")
	}
}

func TestDescriptorForUnknownStyle(t *testing.T) {
	descriptor := DescriptorFor(domain.DesignStyle("vaporwave"))
	if descriptor.Description == "" {
		t.Error("unknown style should fall back to the generic descriptor")
	}
}
