package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// TubeTheme is the default theme with the TubeDL accent color and a
// monospace body font
type TubeTheme struct{}

// NewTubeTheme creates the TubeDL theme
func NewTubeTheme() fyne.Theme {
	return &TubeTheme{}
}

// AccentColor is used for buttons and the progress bar
var AccentColor = color.RGBA{R: 44, G: 126, B: 251, A: 255}

// Color returns theme colors
func (t *TubeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return AccentColor
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePlaceHolder:
		return color.Gray{Y: 128}
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font uses the monospace face for regular text
func (t *TubeTheme) Font(style fyne.TextStyle) fyne.Resource {
	if !style.Italic && !style.Symbol {
		style.Monospace = true
	}
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TubeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *TubeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 10
	}
	return theme.DefaultTheme().Size(name)
}
