package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
)

// ViewportContainer is a dropdown.ScrollContainer backed by a bubbles viewport. Its content
// is a pre-rendered block; the bottom inset adds blank lines after it, and negative offsets
// show blank lines before it.
type ViewportContainer struct {
	viewport viewport.Model
	content  string
	size     dropdown.Size
	inset    dropdown.Insets
	// lead is the number of blank lines above the content while the offset is negative.
	lead     int
	surfaces []*dropdown.Surface
}

// NewViewportContainer creates a container showing a width x height window.
func NewViewportContainer(width, height int) *ViewportContainer {
	c := &ViewportContainer{viewport: viewport.New(width, height)}
	c.size.Width = width
	c.sync()
	return c
}

// SetSize resizes the visible window.
func (c *ViewportContainer) SetSize(width, height int) {
	c.viewport.Width = width
	c.viewport.Height = height
	c.size.Width = width
	c.sync()
}

// SetContentHeight sets the scrollable content height in lines.
func (c *ViewportContainer) SetContentHeight(height int) {
	c.size.Height = max(0, height)
	c.sync()
}

// SetContent replaces the rendered content. It is cropped or padded to the content size.
func (c *ViewportContainer) SetContent(content string) {
	c.content = content
	c.sync()
}

func (c *ViewportContainer) sync() {
	offset := c.viewport.YOffset
	body := dropdown.FitCanvas(c.content, c.size.Width, c.size.Height)
	if pad := max(0, c.inset.Bottom); pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	c.viewport.SetContent(body)
	c.viewport.SetYOffset(offset)
}

// Bounds is the visible window in content coordinates.
func (c *ViewportContainer) Bounds() dropdown.Rect {
	off := c.ContentOffset()
	return dropdown.Rect{X: off.X, Y: off.Y, Width: c.viewport.Width, Height: c.viewport.Height}
}

func (c *ViewportContainer) AddSurface(sf *dropdown.Surface) {
	if !slices.Contains(c.surfaces, sf) {
		c.surfaces = append(c.surfaces, sf)
	}
}

func (c *ViewportContainer) RemoveSurface(sf *dropdown.Surface) {
	c.surfaces = slices.DeleteFunc(c.surfaces, func(x *dropdown.Surface) bool { return x == sf })
}

// Surfaces lists the hosted surfaces in insertion order.
func (c *ViewportContainer) Surfaces() []*dropdown.Surface { return slices.Clone(c.surfaces) }

func (c *ViewportContainer) ContentSize() dropdown.Size { return c.size }

func (c *ViewportContainer) ContentOffset() dropdown.Point {
	if c.lead > 0 {
		return dropdown.Point{Y: -c.lead}
	}
	return dropdown.Point{Y: c.viewport.YOffset}
}

func (c *ViewportContainer) SetContentOffset(p dropdown.Point) {
	if p.Y < 0 {
		c.lead = -p.Y
		c.viewport.SetYOffset(0)
		return
	}
	c.lead = 0
	c.viewport.SetYOffset(p.Y)
}

func (c *ViewportContainer) ContentInset() dropdown.Insets { return c.inset }

func (c *ViewportContainer) SetContentInset(i dropdown.Insets) {
	c.inset = i
	c.sync()
}

// Update lets the viewport handle scrolling input. Scrolling by the user drops any
// negative offset.
func (c *ViewportContainer) Update(msg tea.Msg) tea.Cmd {
	before := c.viewport.YOffset
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	if c.viewport.YOffset != before {
		c.lead = 0
	}
	return cmd
}

// View renders the visible window with the hosted surfaces composited over it.
func (c *ViewportContainer) View() string {
	w, h := c.viewport.Width, c.viewport.Height
	var canvas string
	if c.lead > 0 {
		visible := strings.Split(dropdown.FitCanvas(c.content, c.size.Width, c.size.Height), "\n")
		lines := make([]string, 0, h)
		for range min(c.lead, h) {
			lines = append(lines, "")
		}
		for _, line := range visible {
			if len(lines) == h {
				break
			}
			lines = append(lines, line)
		}
		canvas = strings.Join(lines, "\n")
	} else {
		canvas = c.viewport.View()
	}
	canvas = dropdown.FitCanvas(canvas, w, h)
	return dropdown.ComposeSurfaces(canvas, c.Bounds(), c.surfaces)
}
