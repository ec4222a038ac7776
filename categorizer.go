package blockcss

import "strings"

// PropertyCategory groups related CSS properties for render statistics.
type PropertyCategory string

// Property categories
const (
	CategoryVisual     PropertyCategory = "Visual"
	CategoryLayout     PropertyCategory = "Layout"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryPrefixed   PropertyCategory = "Prefixed"
	CategoryOther      PropertyCategory = "Other"
)

// propertyCategories maps the properties blocks commonly emit to a category
var propertyCategories = map[string]PropertyCategory{
	// Visual
	"background":       CategoryVisual,
	"background-color": CategoryVisual,
	"background-image": CategoryVisual,
	"color":            CategoryVisual,
	"border-color":     CategoryVisual,
	"border-style":     CategoryVisual,
	"box-shadow":       CategoryVisual,
	"opacity":          CategoryVisual,
	"outline":          CategoryVisual,
	"fill":             CategoryVisual,
	"stroke":           CategoryVisual,

	// Layout
	"display":         CategoryLayout,
	"gap":             CategoryLayout,
	"row-gap":         CategoryLayout,
	"column-gap":      CategoryLayout,
	"justify-content": CategoryLayout,
	"align-items":     CategoryLayout,
	"position":        CategoryLayout,
	"top":             CategoryLayout,
	"right":           CategoryLayout,
	"bottom":          CategoryLayout,
	"left":            CategoryLayout,
	"width":           CategoryLayout,
	"height":          CategoryLayout,
	"min-height":      CategoryLayout,
	"max-width":       CategoryLayout,
	"z-index":         CategoryLayout,
	"overflow":        CategoryLayout,

	// Typography
	"font-family":     CategoryTypography,
	"font-size":       CategoryTypography,
	"font-weight":     CategoryTypography,
	"font-style":      CategoryTypography,
	"line-height":     CategoryTypography,
	"letter-spacing":  CategoryTypography,
	"text-align":      CategoryTypography,
	"text-decoration": CategoryTypography,
	"text-transform":  CategoryTypography,

	// Effects
	"transform": CategoryEffects,
	"animation": CategoryEffects,
	"filter":    CategoryEffects,
	"content":   CategoryEffects,
}

// categorizeProperty determines the category of a CSS property
func categorizeProperty(name string) PropertyCategory {
	if cat, exists := propertyCategories[name]; exists {
		return cat
	}

	// Vendor copies added by the builder
	if strings.HasPrefix(name, "-webkit-") || strings.HasPrefix(name, "-moz-") {
		return CategoryPrefixed
	}

	switch {
	case strings.HasPrefix(name, "transition"), strings.HasPrefix(name, "animation-"):
		return CategoryEffects
	case strings.HasPrefix(name, "border-"):
		return CategoryVisual
	case strings.HasPrefix(name, "padding"), strings.HasPrefix(name, "margin"),
		strings.HasPrefix(name, "flex"), strings.HasPrefix(name, "grid"):
		return CategoryLayout
	case strings.HasPrefix(name, "font-"), strings.HasPrefix(name, "text-"):
		return CategoryTypography
	}
	return CategoryOther
}

// isTokenValue checks if a value references a CSS custom property
func isTokenValue(value string) bool {
	return strings.Contains(value, "var(--")
}

// tallyRules counts the declarations of rules per category and the number
// of values that reference custom properties.
func tallyRules(rules []Rule, counts map[string]int) (tokenValues int) {
	for _, rule := range rules {
		for _, d := range rule.Declarations {
			counts[string(categorizeProperty(d.Property))]++
			if isTokenValue(d.Value) {
				tokenValues++
			}
		}
	}
	return tokenValues
}
