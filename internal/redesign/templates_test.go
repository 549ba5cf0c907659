package redesign

import (
	"regexp"
	"strings"
	"testing"

	"github.com/Rhaast00/vervappweb/internal/domain"
)

func TestBundleForEveryStyle(t *testing.T) {
	for _, style := range domain.AllStyles() {
		bundle, ok := BundleFor(style)
		if !ok {
			t.Fatalf("style %s has no template bundle", style)
		}
		if !strings.Contains(bundle.HTML, "<!DOCTYPE html>") {
			t.Errorf("style %s: HTML is not a full document", style)
		}
		if bundle.CSS == "" {
			t.Errorf("style %s: CSS is empty", style)
		}
		if !strings.Contains(bundle.Preview, string(style)) {
			t.Errorf("style %s: preview does not mention the style", style)
		}
	}
}

var classAttrRegex = regexp.MustCompile(`class="([^"]+)"`)

func TestTemplateClassesHaveStyles(t *testing.T) {
	for _, style := range domain.AllStyles() {
		bundle, ok := BundleFor(style)
		if !ok {
			t.Fatalf("style %s has no template bundle", style)
		}

		seen := map[string]bool{}
		for _, match := range classAttrRegex.FindAllStringSubmatch(bundle.HTML, -1) {
			for _, class := range strings.Fields(match[1]) {
				seen[class] = true
			}
		}
		if len(seen) == 0 {
			t.Fatalf("style %s: template has no classes", style)
		}

		for class := range seen {
			if !strings.Contains(bundle.CSS, "."+class) {
				t.Errorf("style %s: class %q has no CSS rule", style, class)
			}
		}
	}
}

func TestFallbackKnownStyleIsDeterministic(t *testing.T) {
	data := &domain.WebsiteData{URL: "https://example.com"}

	first := Fallback(data, domain.StyleGlassmorphism)
	second := Fallback(data, domain.StyleGlassmorphism)

	if first.HTML != second.HTML || first.CSS != second.CSS || first.Preview != second.Preview {
		t.Error("fallback for the same style should be deterministic")
	}
}

func TestFallbackUnknownStyleSynthesizes(t *testing.T) {
	data := &domain.WebsiteData{
		URL:    "https://example.com",
		Colors: []string{"#112233", "#f5f5f5"},
		Fonts:  []domain.Font{{Name: "Georgia"}},
	}

	result := Fallback(data, domain.DesignStyle("vaporwave"))
	if result.HTML == "" || result.CSS == "" || result.Preview == "" {
		t.Fatal("generic fallback must fill all fields")
	}
	if !strings.Contains(result.CSS, "Georgia") {
		t.Error("generic fallback should reuse the analyzed font")
	}
	if !strings.Contains(result.CSS, "#112233") {
		t.Error("generic fallback should reuse the analyzed colors")
	}
}

func TestFallbackNilDataStillWorks(t *testing.T) {
	result := Fallback(nil, domain.DesignStyle("unknown"))
	if result.HTML == "" || result.CSS == "" {
		t.Fatal("fallback must tolerate nil analysis data")
	}
}
