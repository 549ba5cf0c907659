package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Font is a single typeface from an analysis. Models return either a bare
// name ("Inter") or an object ({"name": "Inter", "purpose": "headings"});
// both forms decode into the same struct.
type Font struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose,omitempty"`
}

func (f *Font) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		f.Name = name
		f.Purpose = ""
		return nil
	}

	type fontObject Font
	var obj fontObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("font must be a string or an object: %w", err)
	}
	*f = Font(obj)
	return nil
}

func (f Font) MarshalJSON() ([]byte, error) {
	if f.Purpose == "" {
		return json.Marshal(f.Name)
	}
	type fontObject Font
	return json.Marshal(fontObject(f))
}

func (f Font) String() string {
	if f.Purpose == "" {
		return f.Name
	}
	return fmt.Sprintf("%s (%s)", f.Name, f.Purpose)
}

// Layout is either a free-form description or a mapping of layout aspect to
// description, depending on how the model chose to answer.
type Layout struct {
	Text    string
	Aspects map[string]string
}

func (l *Layout) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		l.Text = text
		l.Aspects = nil
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("layout must be a string or an object: %w", err)
	}

	aspects := make(map[string]string, len(raw))
	for key, value := range raw {
		aspects[key] = fmt.Sprintf("%v", value)
	}
	l.Text = ""
	l.Aspects = aspects
	return nil
}

func (l Layout) MarshalJSON() ([]byte, error) {
	if l.Aspects != nil {
		return json.Marshal(l.Aspects)
	}
	return json.Marshal(l.Text)
}

func (l Layout) IsZero() bool {
	return l.Text == "" && len(l.Aspects) == 0
}

func (l Layout) String() string {
	if l.Text != "" {
		return l.Text
	}
	if len(l.Aspects) == 0 {
		return ""
	}

	keys := make([]string, 0, len(l.Aspects))
	for key := range l.Aspects {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, l.Aspects[key]))
	}
	return strings.Join(parts, "; ")
}

// Element is a structural UI component identified during analysis.
type Element struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type Image struct {
	Src  string `json:"src"`
	Alt  string `json:"alt,omitempty"`
	Type string `json:"type"`
}

type ContentStructure struct {
	Hierarchy      string   `json:"hierarchy"`
	MainSections   []string `json:"mainSections"`
	ContentDensity string   `json:"contentDensity"`
}

// WebsiteData is the result of analyzing one website. Colors, Fonts and
// Elements are never empty in values returned by the analyzer; missing model
// output is filled from the deterministic baseline.
type WebsiteData struct {
	URL              string            `json:"url"`
	Colors           []string          `json:"colors"`
	Fonts            []Font            `json:"fonts"`
	Layout           Layout            `json:"layout"`
	Elements         []Element         `json:"elements"`
	Images           []Image           `json:"images,omitempty"`
	ContentStructure *ContentStructure `json:"contentStructure,omitempty"`
}

// FontNames returns the plain typeface names, dropping purpose annotations.
func (w *WebsiteData) FontNames() []string {
	names := make([]string, 0, len(w.Fonts))
	for _, font := range w.Fonts {
		if font.Name != "" {
			names = append(names, font.Name)
		}
	}
	return names
}
