package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Rhaast00/vervappweb/internal/domain"
)

// RedesignSystem is the system prompt for redesign generation.
const RedesignSystem = "You are a professional web designer specialized in creating modern, responsive websites. " +
	"You generate clean HTML and CSS code based on design requirements."

// BuildRedesign renders the redesign prompt for one website and target style.
// The prompt embeds the analysis data and the style descriptor, and fixes the
// JSON output contract DecodeRedesign parses.
func BuildRedesign(data *domain.WebsiteData, style domain.DesignStyle) string {
	descriptor := DescriptorFor(style)
	year := time.Now().Year()

	techniques := make([]string, 0, len(descriptor.ModernTechniques))
	for _, technique := range descriptor.ModernTechniques {
		techniques = append(techniques, "• "+technique)
	}

	layoutJSON := jsonOr(data.Layout, "Not provided")
	elementsJSON := jsonOr(data.Elements, "Not provided")
	contentJSON := "Not provided"
	if data.ContentStructure != nil {
		contentJSON = jsonOr(data.ContentStructure, "Not provided")
	}

	styleUpper := strings.ToUpper(string(style))

	return fmt.Sprintf(`You are an EXPERT UI/UX designer and frontend developer specializing in creating stunning, modern websites. Your task is to COMPLETELY REDESIGN this website using cutting-edge %[1]s design principles and the latest web technologies.

**ORIGINAL WEBSITE ANALYSIS:**
URL: %[2]s
Current Colors: %[3]s
Current Fonts: %[4]s
Layout Structure: %[5]s
Key Elements: %[6]s
Content Structure: %[7]s

**TARGET DESIGN STYLE: %[8]s (%[9]d)**
%[10]s

**ADVANCED CSS TECHNIQUES TO IMPLEMENT:**
%[11]s

**COLOR PALETTE SPECIFICATIONS:**
%[12]s

**TYPOGRAPHY SYSTEM:**
%[13]s

**SPACING & LAYOUT SYSTEM:**
%[14]s
%[15]s

**CRITICAL DESIGN REQUIREMENTS:**

1. **VISUAL TRANSFORMATION** (Must achieve 100%% visual difference from original):
   - Completely redesign the visual hierarchy
   - Transform all UI elements (buttons, forms, navigation, cards)
   - Apply %[1]s-specific styling to every element
   - Create a cohesive design system throughout

2. **MODERN WEB STANDARDS** (%[9]d best practices):
   - Use CSS Grid and Flexbox for layouts
   - Implement CSS custom properties (variables)
   - Add smooth transitions and micro-animations
   - Ensure responsive design (mobile-first approach)
   - Use semantic HTML5 elements
   - Implement proper accessibility (ARIA labels, focus management)

3. **RESPONSIVE DESIGN** (Mobile-first, Progressive Enhancement):
   - Mobile: 375px+ (stack elements, larger touch targets)
   - Tablet: 768px+ (adjust layouts, optimize spacing)
   - Desktop: 1024px+ (full layout, hover effects)
   - Large: 1440px+ (max-width containers, preserve readability)

4. **PERFORMANCE OPTIMIZATION**:
   - Minimize CSS complexity while maintaining visual richness
   - Use efficient selectors and avoid deep nesting
   - NEVER use external URLs for images, fonts, or resources
   - Use only CSS gradients, colors, and shapes for visual elements
   - Avoid placeholder.com, unsplash.com, or any external image URLs

5. **INTERACTION DESIGN**:
   - Add hover states for all interactive elements
   - Implement focus states for accessibility
   - Include loading states and feedback

**OUTPUT FORMAT:**
Return a properly formatted JSON object with these exact keys:

{
  "html": "Complete, semantic HTML5 document with all content restructured and organized. Include meta tags and accessibility features.",
  "css": "Complete CSS stylesheet with: 1) CSS Reset, 2) CSS Custom Properties, 3) Base styles, 4) Layout components, 5) UI components, 6) Responsive breakpoints, 7) Animations. Must be production-ready and follow %[1]s principles completely.",
  "preview": "Detailed description of the visual transformation, highlighting key %[1]s features, color choices, typography decisions, and overall user experience improvements."
}

**FINAL REQUIREMENTS:**
- The result must look like a completely different, professional website
- Every element must follow %[1]s design principles
- Ensure it's accessible, responsive, and performant

Return ONLY valid JSON, no markdown formatting, no explanation.`,
		style,                      // 1
		data.URL,                   // 2
		joinOr(data.Colors),        // 3
		joinOr(data.FontNames()),   // 4
		layoutJSON,                 // 5
		elementsJSON,               // 6
		contentJSON,                // 7
		styleUpper,                 // 8
		year,                       // 9
		descriptor.Description,     // 10
		strings.Join(techniques, "\n"), // 11
		descriptor.ColorPalette,    // 12
		descriptor.Typography,      // 13
		descriptor.Spacing,         // 14
		descriptor.Layout,          // 15
	)
}

func joinOr(items []string) string {
	if len(items) == 0 {
		return "Not provided"
	}
	return strings.Join(items, ", ")
}

func jsonOr(v any, fallback string) string {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fallback
	}
	text := string(encoded)
	if text == "null" || text == "[]" || text == "{}" || text == `""` {
		return fallback
	}
	return text
}
