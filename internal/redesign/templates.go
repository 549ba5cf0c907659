// Package redesign provides the deterministic fallback bundles used when AI
// generation is unavailable or fails. Every style ships a complete static
// HTML/CSS template so a redesign request always produces a renderable result.
package redesign

import (
	"embed"
	"fmt"

	"github.com/Rhaast00/vervappweb/internal/domain"
)

//go:embed templates/*.html templates/*.css
var templateFS embed.FS

// Bundle is one complete fallback redesign.
type Bundle struct {
	HTML    string
	CSS     string
	Preview string
}

var previews = map[domain.DesignStyle]string{
	domain.StyleMinimalist: `- Clean, spacious layout with plenty of whitespace
- Minimal color palette focused on typography
- Simple navigation and clear content hierarchy
- No unnecessary visual elements or decorations`,
	domain.StyleBrutalist: `- Bold, high-contrast design with raw aesthetic
- Monospaced typography and geometric shapes
- Thick borders and anti-beauty design principles
- Strong visual impact with primary colors`,
	domain.StyleGlassmorphism: `- Transparent glass-like elements with blur effects
- Layered depth with soft shadows
- Modern gradient backgrounds
- Elegant, sophisticated appearance`,
	domain.StyleNeumorphism: `- Soft shadows creating embossed/pressed effects
- Monochromatic color scheme with subtle variations
- Rounded corners and tactile appearance
- Low contrast, gentle visual hierarchy`,
	domain.StyleMaterial: `- Card-based layout with elevation shadows
- Bold, vibrant Material Design colors
- Grid system with consistent spacing
- Modern interactive elements`,
	domain.StyleFlat: `- Flat design with no shadows or gradients
- Bold, solid colors and simple shapes
- Clean typography and minimal visual hierarchy
- 2D aesthetic with sharp, defined edges`,
}

// BundleFor loads the static template bundle for a style. The second return
// is false for styles without a shipped template.
func BundleFor(style domain.DesignStyle) (Bundle, bool) {
	html, err := templateFS.ReadFile(fmt.Sprintf("templates/%s.html", style))
	if err != nil {
		return Bundle{}, false
	}
	css, err := templateFS.ReadFile(fmt.Sprintf("templates/%s.css", style))
	if err != nil {
		return Bundle{}, false
	}
	return Bundle{
		HTML:    string(html),
		CSS:     string(css),
		Preview: buildPreview(style),
	}, true
}

// Fallback produces a deterministic redesign for any style. Known styles get
// their shipped template; unknown styles get a generic document synthesized
// from the analysis data.
func Fallback(data *domain.WebsiteData, style domain.DesignStyle) *domain.RedesignResult {
	if bundle, ok := BundleFor(style); ok {
		return &domain.RedesignResult{
			HTML:    bundle.HTML,
			CSS:     bundle.CSS,
			Preview: bundle.Preview,
		}
	}
	return genericBundle(data, style)
}

func buildPreview(style domain.DesignStyle) string {
	bullets, ok := previews[style]
	if !ok {
		bullets = "- Modern, professional redesign with consistent styling"
	}

	return fmt.Sprintf(`This %[1]s redesign completely transforms the original website with %[1]s-specific design principles:

%[2]s

The redesign maintains the original content structure while completely transforming the visual presentation to embody %[1]s design philosophy. Every element has been carefully crafted to create a cohesive %[1]s experience.`, style, bullets)
}

func genericBundle(data *domain.WebsiteData, style domain.DesignStyle) *domain.RedesignResult {
	font := "Arial"
	if data != nil {
		if names := data.FontNames(); len(names) > 0 {
			font = names[0]
		}
	}

	background := "#ffffff"
	accent := "#2c3e50"
	if data != nil && len(data.Colors) > 0 {
		accent = data.Colors[0]
		if len(data.Colors) > 1 {
			background = data.Colors[1]
		}
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%[1]s Redesign</title>
</head>
<body>
  <header>
    <nav>
      <div class="logo">Logo</div>
      <ul>
        <li><a href="#">Home</a></li>
        <li><a href="#">About</a></li>
        <li><a href="#">Services</a></li>
        <li><a href="#">Contact</a></li>
      </ul>
    </nav>
  </header>
  <main>
    <section class="hero">
      <h1>Redesigned with %[1]s Style</h1>
      <p>This website has been completely redesigned using %[1]s principles</p>
      <button>Explore</button>
    </section>
  </main>
  <footer>
    <p>&copy; 2024 %[1]s Design</p>
  </footer>
</body>
</html>`, style)

	css := fmt.Sprintf(`body {
  font-family: %s, sans-serif;
  margin: 0;
  padding: 0;
  background: %s;
  color: %s;
}

nav {
  display: flex;
  justify-content: space-between;
  align-items: center;
  padding: 1.5rem 2rem;
}

nav ul {
  display: flex;
  gap: 1.5rem;
  list-style: none;
}

.hero {
  text-align: center;
  padding: 5rem 2rem;
}

.hero button {
  background: %s;
  color: %s;
  border: none;
  padding: 1rem 2rem;
  cursor: pointer;
}`, font, background, accent, accent, background)

	return &domain.RedesignResult{
		HTML:    html,
		CSS:     css,
		Preview: buildPreview(style),
	}
}
