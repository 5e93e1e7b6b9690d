package config

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
	dmerrors "github.com/alexisbeaulieu97/dropmenu/pkg/errors"
)

var (
	lineBreakModes = map[string]dropdown.LineBreakMode{
		"word_wrap":       dropdown.LineBreakWordWrap,
		"char_wrap":       dropdown.LineBreakCharWrap,
		"clip":            dropdown.LineBreakClip,
		"truncate_head":   dropdown.LineBreakTruncateHead,
		"truncate_tail":   dropdown.LineBreakTruncateTail,
		"truncate_middle": dropdown.LineBreakTruncateMiddle,
	}

	alignments = map[string]dropdown.TextAlignment{
		"left":   dropdown.AlignLeft,
		"center": dropdown.AlignCenter,
		"right":  dropdown.AlignRight,
	}

	cornerMasks = map[string]dropdown.Corners{
		"auto":   dropdown.CornersAuto,
		"top":    dropdown.CornersTop,
		"bottom": dropdown.CornersBottom,
		"all":    dropdown.CornersAll,
	}

	indicators = map[string]dropdown.Indicator{
		"triangle": dropdown.DefaultIndicator,
		"arrow":    {Down: "↓", Left: "←", Up: "↑", Right: "→"},
		"none":     {},
	}
)

// Options converts the document settings to menu options, starting from
// dropdown.DefaultOptions. The document must have been validated.
func (d *Document) Options() (dropdown.Options, error) {
	s := d.Settings
	o := dropdown.DefaultOptions()

	o.AllowsMultipleSelection = s.MultipleSelection
	o.ShowsContentAbove = s.ContentAbove
	o.AdjustsContentOffset = s.AdjustsContentOffset
	o.ShowsBorder = s.ShowsBorder
	setBool(&o.AdjustsContentInset, s.AdjustsContentInset)
	setBool(&o.DropsShadow, s.DropsShadow)
	setBool(&o.ShowsTopRowSeparator, s.TopSeparator)
	setBool(&o.ShowsBottomRowSeparator, s.BottomSeparator)

	if s.Dimming != nil {
		o.BackgroundDimmingOpacity = *s.Dimming
	}
	if s.CornerRadius != nil {
		o.CornerRadius = *s.CornerRadius
	}

	if s.FullScreenWidth {
		o.UseFullScreenWidth = true
		o.FullScreenInsetLeft = s.FullScreenInsets.Left
		o.FullScreenInsetRight = s.FullScreenInsets.Right
	}

	if s.LineBreak != "" {
		o.ComponentLineBreak = lineBreakModes[s.LineBreak]
	}
	if s.Alignment != "" {
		o.ComponentAlignment = alignments[s.Alignment]
	}
	if s.RowAlignment != "" {
		o.RowAlignment = alignments[s.RowAlignment]
	}
	if s.Corners != "" {
		o.RoundedCorners = cornerMasks[s.Corners]
	}
	if s.Indicator != "" {
		o.DisclosureIndicator = indicators[s.Indicator]
	}

	if s.Animation != "" {
		duration, err := time.ParseDuration(s.Animation)
		if err != nil {
			return o, dmerrors.NewValidationError("settings.animation", "invalid duration", err)
		}
		o.AnimationDuration = duration
	}

	setColor(&o.ComponentSeparatorColor, s.Colors.ComponentSeparator)
	setColor(&o.RowSeparatorColor, s.Colors.RowSeparator)
	setColor(&o.SelectedComponentBackground, s.Colors.SelectedBackground)
	setColor(&o.DropdownBackground, s.Colors.Background)

	return o, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setColor(dst *lipgloss.TerminalColor, hex string) {
	if hex != "" {
		*dst = lipgloss.Color(hex)
	}
}
