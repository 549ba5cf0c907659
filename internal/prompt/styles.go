package prompt

import "github.com/Rhaast00/vervappweb/internal/domain"

// StyleDescriptor captures the design language of one target style. The
// redesign prompt interpolates every field, so the text here directly shapes
// model output quality.
type StyleDescriptor struct {
	Description      string
	ModernTechniques []string
	ColorPalette     string
	Typography       string
	Spacing          string
	Layout           string
}

var styleDescriptors = map[domain.DesignStyle]StyleDescriptor{
	domain.StyleMinimalist: {
		Description: "Ultra-clean, sophisticated design with maximum impact through simplicity. Think Apple, Google, or Stripe.",
		ModernTechniques: []string{
			"Use CSS Grid and Flexbox for perfect layouts",
			"Implement micro-animations with CSS transitions (0.3s ease)",
			"Apply subtle hover effects (transform: translateY(-2px))",
			"Use custom CSS properties (--primary-color) for consistency",
			"Add smooth scrolling behavior",
			"Implement focus-visible for accessibility",
			"Use system fonts stack for performance",
		},
		ColorPalette: "Monochromatic scheme: #ffffff, #f8f9fa, #e9ecef, #6c757d, #212529, with one vibrant accent #007bff or #28a745",
		Typography:   `System font stack: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif. Use 16px base, 1.5 line-height, font weights 400, 500, 600`,
		Spacing:      "Use 8px grid system: 8px, 16px, 24px, 32px, 48px, 64px, 96px",
		Layout:       "Centered max-width containers (1200px), generous whitespace (min 64px sections), single-column focus",
	},
	domain.StyleBrutalist: {
		Description: "Bold, rebellious design that breaks conventional rules. Raw power meets digital aesthetics.",
		ModernTechniques: []string{
			"Use CSS transforms for dynamic layouts",
			"Implement bold typography mixing (serif + monospace)",
			"Add glitch effects with CSS animations",
			"Use CSS clip-path for geometric shapes",
			"Implement scroll-triggered animations",
			`Add intentional "broken" layouts that still work`,
			"Use high contrast for maximum impact",
		},
		ColorPalette: "High contrast: #000000, #ffffff, #ff0000, #00ff00, #0000ff, #ffff00, #ff00ff",
		Typography:   "Mix of monospace (Courier New, Monaco) and bold sans-serif. Use aggressive font weights: 700, 900",
		Spacing:      "Irregular spacing, overlapping elements, asymmetrical layouts",
		Layout:       "Grid-based chaos, overlapping sections, bold geometric shapes",
	},
	domain.StyleGlassmorphism: {
		Description: "Ethereal, floating design with depth and transparency. Modern sophistication meets visual innovation.",
		ModernTechniques: []string{
			"backdrop-filter: blur(20px) saturation(180%)",
			"Use CSS custom properties for glass effects",
			"Implement layered z-index hierarchy",
			"Add subtle animations with will-change property",
			"Use CSS masks for complex shapes",
			"Implement progressive blur effects",
			"Add hover state transformations",
		},
		ColorPalette: "Gradients and transparency: rgba(255,255,255,0.1), linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		Typography:   "Light, airy fonts: Inter, SF Pro Display, with font-weight 300-600",
		Spacing:      "Floating elements with generous padding (32px+), overlapping cards",
		Layout:       "Layered cards, floating navigation, depth through transparency",
	},
	domain.StyleNeumorphism: {
		Description: "Soft, tactile design that feels touchable. Digital interfaces that mimic physical materials.",
		ModernTechniques: []string{
			"Multiple box-shadows for depth (inset and outset)",
			"Use CSS custom properties for consistent shadows",
			"Implement hover state micro-interactions",
			"Add subtle gradient backgrounds",
			"Use border-radius consistently (12px-24px)",
			"Implement pressed states for buttons",
			"Add ambient lighting effects",
		},
		ColorPalette: "Soft neutrals: #e0e5ec, #f0f2f5, #d1d9e6, #bec8d1, with subtle colored accents",
		Typography:   "Soft, rounded fonts: Poppins, Nunito, with medium weights 400-600",
		Spacing:      "Consistent padding (24px), soft margins, flowing layouts",
		Layout:       "Soft cards, gentle curves, tactile button styles",
	},
	domain.StyleMaterial: {
		Description: "Google Material Design 3.0 principles. Bold, intentional, and delightfully interactive.",
		ModernTechniques: []string{
			"Use Material Design elevation system (0-24dp)",
			"Implement ripple effects with CSS animations",
			"Add floating action buttons with proper shadows",
			"Use Material Design color system",
			"Implement proper motion curves (cubic-bezier)",
			"Add state layers for interactions",
			"Use shaped containers and dynamic colors",
		},
		ColorPalette: "Material You colors: #6750a4 (primary), #e8def8 (surface), #1d1b20 (on-surface), with dynamic theming",
		Typography:   "Roboto or system fonts, Material type scale: 12sp, 14sp, 16sp, 22sp, 28sp",
		Spacing:      "Material Design 8dp grid system: 8dp, 16dp, 24dp, 32dp, 40dp",
		Layout:       "Card-based, FAB positioning, app bar structure, systematic elevation",
	},
	domain.StyleFlat: {
		Description: "Clean, direct design with bold colors and sharp edges. Maximum clarity and usability.",
		ModernTechniques: []string{
			"Use bold, saturated colors effectively",
			"Implement clean button states without shadows",
			"Add subtle hover animations (scale, color changes)",
			"Use CSS Grid for precise layouts",
			"Implement icon fonts or SVG icons",
			"Add clean form styling",
			"Use geometric patterns and shapes",
		},
		ColorPalette: "Bright, saturated: #3498db, #e74c3c, #2ecc71, #f39c12, #9b59b6, #34495e, #ecf0f1",
		Typography:   "Clean sans-serif: Open Sans, Helvetica Neue, weights 400, 600, 700",
		Spacing:      "Consistent grid (16px base), clean margins, precise alignment",
		Layout:       "Sharp edges, grid-based, clear sections, bold contrast",
	},
}

var genericDescriptor = StyleDescriptor{
	Description: "Modern, professional design with clear hierarchy and consistent styling.",
	ModernTechniques: []string{
		"Use CSS Grid and Flexbox for layouts",
		"Implement CSS custom properties",
		"Add smooth transitions and hover states",
		"Ensure responsive, mobile-first design",
	},
	ColorPalette: "Balanced palette with one primary, one accent and neutral tones",
	Typography:   "Clean sans-serif system font stack, weights 400-700",
	Spacing:      "Consistent 8px grid spacing",
	Layout:       "Centered max-width containers, clear sections",
}

// DescriptorFor returns the descriptor for a style. Unknown styles get a
// generic descriptor so the prompt builder never fails.
func DescriptorFor(style domain.DesignStyle) StyleDescriptor {
	if descriptor, ok := styleDescriptors[style]; ok {
		return descriptor
	}
	return genericDescriptor
}
