package prompt

import (
	"fmt"
	"strings"
)

// AnalysisSystem is the system prompt for website design analysis.
const AnalysisSystem = "You are a web design analyzer that extracts design information from websites. " +
	"You always respond with a single valid JSON object and nothing else."

// AnalysisVars carries the page material the analysis prompt embeds. All
// fields are optional; empty ones are skipped so a URL-only analysis still
// produces a usable prompt.
type AnalysisVars struct {
	URL             string
	Title           string
	MetaDescription string
	CSSSample       string
	BodySample      string
}

// BuildAnalysis renders the user prompt for design analysis. The contract in
// the prompt text defines the JSON shape DecodeAnalysis expects back.
func BuildAnalysis(vars AnalysisVars) string {
	var sb strings.Builder

	sb.WriteString(`Analyze this website data and extract the following information:

1. Color palette (main colors used)
2. Fonts used
3. Overall layout structure
4. Key UI elements and components
5. Representative images
6. Content structure and hierarchy

`)
	sb.WriteString(fmt.Sprintf("Website: %s\n", vars.URL))
	if vars.Title != "" {
		sb.WriteString(fmt.Sprintf("Title: %s\n", vars.Title))
	}
	if vars.MetaDescription != "" {
		sb.WriteString(fmt.Sprintf("Description: %s\n", vars.MetaDescription))
	}
	if vars.CSSSample != "" {
		sb.WriteString(fmt.Sprintf("\nCSS Sample:\n%s\n", vars.CSSSample))
	}
	if vars.BodySample != "" {
		sb.WriteString(fmt.Sprintf("\nHTML Sample:\n%s\n", vars.BodySample))
	}

	sb.WriteString(`
Return the analysis as a JSON object with these exact keys:
- "colors": array of hex color codes
- "fonts": array of font names
- "layout": string description of the layout structure
- "elements": array of objects with "type" and "description"
- "images": array of objects with "src", "alt" and "type"
- "contentStructure": object with "hierarchy" (string), "mainSections" (array of strings) and "contentDensity" (string)

Return ONLY valid JSON, no markdown formatting, no explanation.`)

	return sb.String()
}
