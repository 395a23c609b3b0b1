// Package ui provides the DecoraPuertas application UI components.
//
// This file defines the application theme: the default Fyne theme with a
// slightly roomier type scale and an optional forced light/dark variant.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme names stored in the app config.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// ThemeNames lists the selectable themes in display order.
var ThemeNames = []string{ThemeSystem, ThemeLight, ThemeDark}

// DecoraTheme wraps the default Fyne theme with sizing overrides for the
// configurator layout.
type DecoraTheme struct {
	base         fyne.Theme
	variant      fyne.ThemeVariant
	followSystem bool
}

// NewDecoraTheme creates a theme for a config theme name. Unknown names
// follow the system variant.
func NewDecoraTheme(name string) *DecoraTheme {
	t := &DecoraTheme{base: theme.DefaultTheme()}
	t.SetThemeName(name)
	return t
}

// SetThemeName switches between the system, light and dark variants.
func (t *DecoraTheme) SetThemeName(name string) {
	switch name {
	case ThemeLight:
		t.variant, t.followSystem = theme.VariantLight, false
	case ThemeDark:
		t.variant, t.followSystem = theme.VariantDark, false
	default:
		t.followSystem = true
	}
}

// Color delegates to the base theme, forcing the stored variant unless the
// theme follows the system.
func (t *DecoraTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if !t.followSystem {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *DecoraTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *DecoraTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns sizing overrides for the configurator layout.
func (t *DecoraTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 8
	default:
		return t.base.Size(name)
	}
}
