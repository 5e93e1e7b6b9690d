package dropdown

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	defaultSeparatorColor     = lipgloss.Color("#C7C7CC")
	defaultDropdownBackground = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1C1C1E"}
	defaultHighlightColor     = lipgloss.AdaptiveColor{Light: "#D1D1D6", Dark: "#3A3A3C"}
	defaultRowForeground      = lipgloss.AdaptiveColor{Light: "#1C1C1E", Dark: "#F2F2F7"}
	defaultShadowColor        = lipgloss.AdaptiveColor{Light: "#8E8E93", Dark: "#000000"}

	// dimBase is the neutral foreground the dimming overlay is blended from.
	dimBase = colorful.Color{R: 0.75, G: 0.75, B: 0.75}

	segmentStyle         = lipgloss.NewStyle()
	selectedSegmentStyle = lipgloss.NewStyle().Bold(true)
	disabledSegmentStyle = lipgloss.NewStyle().Faint(true)

	rowStyle = lipgloss.NewStyle().Foreground(defaultRowForeground)
)

// DimColor returns the foreground used for content covered by the dimming overlay. Positive
// opacities blend toward black, negative ones toward white. The result is nil when the
// opacity is zero.
func DimColor(opacity float64) lipgloss.TerminalColor {
	if opacity == 0 {
		return nil
	}
	target := colorful.Color{R: 0, G: 0, B: 0}
	if opacity < 0 {
		target = colorful.Color{R: 1, G: 1, B: 1}
		opacity = -opacity
	}
	if opacity > 1 {
		opacity = 1
	}
	return lipgloss.Color(dimBase.BlendLab(target, opacity).Clamped().Hex())
}

// shade mixes c toward black (amount > 0) or white (amount < 0). Used to derive a highlight
// from a row background when no highlight colour is configured.
func shade(c lipgloss.TerminalColor, amount float64) lipgloss.TerminalColor {
	if c == nil {
		return nil
	}
	base, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	target := colorful.Color{R: 0, G: 0, B: 0}
	if amount < 0 {
		target = colorful.Color{R: 1, G: 1, B: 1}
		amount = -amount
	}
	return lipgloss.Color(base.BlendLab(target, amount).Clamped().Hex())
}
