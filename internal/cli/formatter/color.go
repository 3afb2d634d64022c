package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// categoryColors maps well-known category names to block colors. Unknown
// categories fall back to a stable hash pick so a category keeps its color
// across renders.
var categoryColors = map[string]lipgloss.Color{
	"sleep":                   ColorPurple,
	"work":                    ColorBlue,
	"work (active)":           ColorBlue,
	"work (passive)":          ColorAqua,
	"learning":                ColorYellow,
	"exercise":                ColorGreen,
	"life essentials":         ColorAqua,
	"intimate / quality time": ColorPurple,
	"unplanned / wasted":      ColorRed,
}

var fallbackColors = []lipgloss.Color{
	ColorGreen, ColorYellow, ColorBlue, ColorPurple, ColorAqua,
}

// CategoryColor returns the block color for a category name.
func CategoryColor(name string) lipgloss.Color {
	if name == "" {
		return ColorDim
	}
	if c, ok := categoryColors[strings.ToLower(name)]; ok {
		return c
	}
	var sum int
	for _, r := range name {
		sum += int(r)
	}
	return fallbackColors[sum%len(fallbackColors)]
}

// CategoryStyle returns a foreground style in the category's color.
func CategoryStyle(name string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CategoryColor(name))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
