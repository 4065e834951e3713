package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))             // green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))             // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))            // cyan
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))            // purple
	streamStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))           // grey
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")) // purple
	bannerStyle  = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 2)
)

var StyleSymbols = map[string]string{
	"pass":    "✓",
	"fail":    "✗",
	"warning": "!",
	"info":    "ℹ",
	"arrow":   "→",
	"bullet":  "•",
	"bar":     "━",
	"empty":   "─",
}

func FSuccess(text string) string {
	return successStyle.Render(text)
}
func FError(text string) string {
	return errorStyle.Render(text)
}
func FWarning(text string) string {
	return warningStyle.Render(text)
}
func FInfo(text string) string {
	return infoStyle.Render(text)
}
func FDetail(text string) string {
	return detailStyle.Render(text)
}
func FStream(text string) string {
	return streamStyle.Render(text)
}
func FHeader(text string) string {
	return headerStyle.Render(text)
}

func PrintSuccess(w io.Writer, text string) {
	fmt.Fprintln(w, FSuccess(StyleSymbols["pass"]+" "+text))
}
func PrintError(w io.Writer, text string) {
	fmt.Fprintln(w, FError(StyleSymbols["fail"]+" "+text))
}
func PrintWarning(w io.Writer, text string) {
	fmt.Fprintln(w, FWarning(StyleSymbols["warning"]+" "+text))
}
func PrintInfo(w io.Writer, text string) {
	fmt.Fprintln(w, FInfo(text))
}
func PrintHeader(w io.Writer, text string) {
	fmt.Fprintln(w, FHeader(text))
}

// PrintBanner prints the boxed program title
func PrintBanner(w io.Writer, title string) {
	fmt.Fprintln(w, bannerStyle.Render(title))
}

// barCells returns how many of width cells are filled for fraction
func barCells(fraction float64, width int) int {
	if fraction <= 0 || width <= 0 {
		return 0
	}
	if fraction >= 1 {
		return width
	}
	return int(fraction * float64(width))
}

// RenderBar draws a progress bar of width cells
func RenderBar(fraction float64, width int) string {
	filled := barCells(fraction, width)
	return FSuccess(strings.Repeat(StyleSymbols["bar"], filled)) +
		FStream(strings.Repeat(StyleSymbols["empty"], width-filled))
}
