package prompt

import (
	"strings"
	"testing"

	perrors "github.com/Rhaast00/vervappweb/pkg/errors"
)

func TestExtractJSONFromFence(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "json fence",
			input: "```json\n{\"colors\": [\"#fff\"]}\n```",
			want:  `{"colors": ["#fff"]}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "uppercase fence tag",
			input: "```JSON\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "fence with surrounding prose",
			input: "Here is the result:\n```json\n{\"a\": 1}\n```\nLet me know if you need changes.",
			want:  `{"a": 1}`,
		},
		{
			name:  "no fence",
			input: "  {\"a\": 1}  ",
			want:  `{"a": 1}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractJSON(tc.input)
			if got != tc.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestDecodeAnalysis(t *testing.T) {
	raw := "```json\n" + `{
		"colors": ["#000000", "#ffffff"],
		"fonts": ["Inter", {"name": "Georgia", "purpose": "headings"}],
		"layout": {"structure": "single column", "header": "sticky"},
		"elements": [{"type": "nav", "description": "Top navigation bar"}]
	}` + "\n```"

	data, err := DecodeAnalysis(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.Colors) != 2 {
		t.Errorf("expected 2 colors, got %d", len(data.Colors))
	}
	if len(data.Fonts) != 2 {
		t.Fatalf("expected 2 fonts, got %d", len(data.Fonts))
	}
	if data.Fonts[0].Name != "Inter" {
		t.Errorf("expected first font Inter, got %q", data.Fonts[0].Name)
	}
	if data.Fonts[1].Purpose != "headings" {
		t.Errorf("expected second font purpose headings, got %q", data.Fonts[1].Purpose)
	}
	if data.Layout.Aspects["structure"] != "single column" {
		t.Errorf("layout aspects not decoded: %#v", data.Layout)
	}
	if len(data.Elements) != 1 || data.Elements[0].Type != "nav" {
		t.Errorf("elements not decoded: %#v", data.Elements)
	}
}

func TestDecodeAnalysisStringLayout(t *testing.T) {
	data, err := DecodeAnalysis(`{"colors": [], "layout": "Single column with sticky header"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Layout.Text != "Single column with sticky header" {
		t.Errorf("string layout not decoded: %#v", data.Layout)
	}
}

func TestDecodeAnalysisInvalidJSON(t *testing.T) {
	_, err := DecodeAnalysis("I could not analyze that website, sorry.")
	if err == nil {
		t.Fatal("expected error for non-JSON response")
	}
	if !perrors.IsResponseShape(err) {
		t.Fatalf("expected ResponseShapeError, got %T", err)
	}
}

func TestDecodeRedesign(t *testing.T) {
	raw := `{"html": "<html></html>", "css": "body{}", "preview": "A clean redesign"}`

	result, err := DecodeRedesign(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HTML != "<html></html>" || result.CSS != "body{}" {
		t.Errorf("unexpected result: %#v", result)
	}
}

func TestDecodeRedesignMissingFields(t *testing.T) {
	cases := map[string]string{
		"missing html":    `{"css": "body{}", "preview": "p"}`,
		"missing css":     `{"html": "<html></html>", "preview": "p"}`,
		"missing preview": `{"html": "<html></html>", "css": "body{}"}`,
		"blank html":      `{"html": "  ", "css": "body{}", "preview": "p"}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeRedesign(raw); err == nil {
				t.Error("expected error for incomplete redesign")
			}
		})
	}
}

func TestBuildAnalysisContainsContract(t *testing.T) {
	text := BuildAnalysis(AnalysisVars{
		URL:             "https://example.com",
		Title:           "Example",
		MetaDescription: "An example page",
		CSSSample:       "body { color: red; }",
		BodySample:      "<main>Hello</main>",
	})

	for _, want := range []string{
		"https://example.com",
		`"colors"`,
		`"fonts"`,
		`"layout"`,
		`"elements"`,
		`"images"`,
		`"contentStructure"`,
		"ONLY valid JSON",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("analysis prompt missing %q", want)
		}
	}
}

func TestBuildAnalysisSkipsEmptySections(t *testing.T) {
	text := BuildAnalysis(AnalysisVars{URL: "https://example.com"})
	if strings.Contains(text, "CSS Sample") || strings.Contains(text, "HTML Sample") {
		t.Error("empty samples should be omitted from the prompt")
	}
}
