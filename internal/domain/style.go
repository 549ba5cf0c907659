package domain

import "strings"

// DesignStyle is the closed set of supported redesign styles.
type DesignStyle string

const (
	StyleMinimalist    DesignStyle = "minimalist"
	StyleBrutalist     DesignStyle = "brutalist"
	StyleGlassmorphism DesignStyle = "glassmorphism"
	StyleNeumorphism   DesignStyle = "neumorphism"
	StyleMaterial      DesignStyle = "material"
	StyleFlat          DesignStyle = "flat"
)

func AllStyles() []DesignStyle {
	return []DesignStyle{
		StyleMinimalist,
		StyleBrutalist,
		StyleGlassmorphism,
		StyleNeumorphism,
		StyleMaterial,
		StyleFlat,
	}
}

func (s DesignStyle) Valid() bool {
	switch s {
	case StyleMinimalist, StyleBrutalist, StyleGlassmorphism, StyleNeumorphism, StyleMaterial, StyleFlat:
		return true
	}
	return false
}

func (s DesignStyle) String() string {
	return string(s)
}

// ParseStyle normalizes and validates a style name.
func ParseStyle(raw string) (DesignStyle, bool) {
	style := DesignStyle(strings.ToLower(strings.TrimSpace(raw)))
	return style, style.Valid()
}
