package domain

import (
	"encoding/json"
	"testing"
)

func TestFontDecodesStringAndObject(t *testing.T) {
	var fonts []Font
	raw := `["Inter", {"name": "Georgia", "purpose": "headings"}]`
	if err := json.Unmarshal([]byte(raw), &fonts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fonts[0].Name != "Inter" || fonts[0].Purpose != "" {
		t.Errorf("string font decoded wrong: %#v", fonts[0])
	}
	if fonts[1].Name != "Georgia" || fonts[1].Purpose != "headings" {
		t.Errorf("object font decoded wrong: %#v", fonts[1])
	}
}

func TestFontMarshalRoundTrip(t *testing.T) {
	plain, err := json.Marshal(Font{Name: "Inter"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(plain) != `"Inter"` {
		t.Errorf("font without purpose should marshal as a string, got %s", plain)
	}

	annotated, err := json.Marshal(Font{Name: "Georgia", Purpose: "headings"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(annotated) != `{"name":"Georgia","purpose":"headings"}` {
		t.Errorf("annotated font should marshal as an object, got %s", annotated)
	}
}

func TestLayoutDecodesStringAndObject(t *testing.T) {
	var asText Layout
	if err := json.Unmarshal([]byte(`"single column"`), &asText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asText.Text != "single column" || asText.Aspects != nil {
		t.Errorf("string layout decoded wrong: %#v", asText)
	}

	var asObject Layout
	if err := json.Unmarshal([]byte(`{"header": "sticky", "columns": 2}`), &asObject); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asObject.Aspects["header"] != "sticky" {
		t.Errorf("object layout decoded wrong: %#v", asObject)
	}
	if asObject.Aspects["columns"] != "2" {
		t.Errorf("non-string aspect values should be stringified: %#v", asObject)
	}
}

func TestLayoutString(t *testing.T) {
	layout := Layout{Aspects: map[string]string{"header": "sticky", "columns": "2"}}
	if got := layout.String(); got != "columns: 2; header: sticky" {
		t.Errorf("aspects should render sorted, got %q", got)
	}
}

func TestParseStyle(t *testing.T) {
	if style, ok := ParseStyle("  Minimalist "); !ok || style != StyleMinimalist {
		t.Errorf("ParseStyle should normalize case and whitespace, got %q %v", style, ok)
	}
	if _, ok := ParseStyle("vaporwave"); ok {
		t.Error("unknown style should not validate")
	}
}

func TestFontNamesSkipsEmpty(t *testing.T) {
	data := WebsiteData{Fonts: []Font{{Name: "Inter"}, {Name: ""}, {Name: "Georgia", Purpose: "headings"}}}
	names := data.FontNames()
	if len(names) != 2 || names[0] != "Inter" || names[1] != "Georgia" {
		t.Errorf("FontNames = %v", names)
	}
}
