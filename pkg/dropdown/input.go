package dropdown

// KeyAction is a keyboard command understood by Menu.HandleKey. Hosts translate their own
// key bindings into actions.
type KeyAction int

const (
	KeyNone KeyAction = iota
	KeyNextComponent
	KeyPrevComponent
	KeyToggle
	KeyRowUp
	KeyRowDown
	KeyPageUp
	KeyPageDown
	KeyActivate
	KeyClose
)

var keyActionNames = map[KeyAction]string{
	KeyNone:          "none",
	KeyNextComponent: "next-component",
	KeyPrevComponent: "prev-component",
	KeyToggle:        "toggle",
	KeyRowUp:         "row-up",
	KeyRowDown:       "row-down",
	KeyPageUp:        "page-up",
	KeyPageDown:      "page-down",
	KeyActivate:      "activate",
	KeyClose:         "close",
}

func (a KeyAction) String() string {
	if name, ok := keyActionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Tap behaves like a press on a segment: a closed, enabled component opens and the open one
// closes. Taps are ignored while a transition is running.
func (m *Menu) Tap(component int) {
	if m.transition.animating {
		m.log.Debug().Int("component", component).Msg("tap ignored while animating")
		return
	}
	if component == noComponent || component == m.selected {
		m.CloseAllComponents(true)
		return
	}
	if component < 0 || component >= len(m.segments) || !m.segments[component].enabled {
		return
	}
	m.focus = component
	m.Open(component, true)
}

// TapOutside closes every component, as a tap on the dimmed background does.
func (m *Menu) TapOutside() { m.Tap(noComponent) }

// Focus is the segment keyboard commands act on.
func (m *Menu) Focus() int { return m.focus }

// HandleClick routes a click at p, in container coordinates. It reports whether the click
// landed on the bar or the surface.
func (m *Menu) HandleClick(p Point) bool {
	if m.surface.attached {
		switch hit, row := m.surface.HitTest(p); hit {
		case HitRow:
			m.surface.TapRow(row)
			return true
		case HitPanel:
			return true
		case HitBackground:
			m.TapOutside()
			return true
		}
	}

	if !m.frame.Contains(p) {
		return false
	}
	local := Point{X: p.X - m.frame.X, Y: p.Y - m.frame.Y}
	for i, seg := range m.segments {
		if seg.frame.Contains(local) {
			m.focusVisible = false
			m.Tap(i)
			break
		}
	}
	return true
}

// HandleWheel scrolls the open panel when p is over it.
func (m *Menu) HandleWheel(p Point, delta int) bool {
	if !m.surface.attached || !m.surface.PanelFrame().Contains(p) {
		return false
	}
	m.surface.Scroll(delta)
	return true
}

// HandleKey applies a keyboard command and reports whether it had an effect.
func (m *Menu) HandleKey(action KeyAction) bool {
	n := len(m.segments)
	if n == 0 {
		return false
	}
	_, open := m.SelectedComponent()

	switch action {
	case KeyNextComponent, KeyPrevComponent:
		delta := 1
		if action == KeyPrevComponent {
			delta = -1
		}
		m.focusVisible = true
		m.focus = ((m.focus+delta)%n + n) % n
		if open {
			m.Tap(m.focus)
		}
		return true
	case KeyToggle:
		m.focusVisible = true
		m.Tap(m.focus)
		return true
	case KeyRowUp, KeyRowDown:
		if !open {
			if action == KeyRowDown && !m.opts.ShowsContentAbove || action == KeyRowUp && m.opts.ShowsContentAbove {
				m.Tap(m.focus)
				return true
			}
			return false
		}
		delta := 1
		if action == KeyRowUp {
			delta = -1
		}
		return m.surface.MoveCursor(delta)
	case KeyPageUp, KeyPageDown:
		if !open {
			return false
		}
		delta := max(1, m.surface.visibleRowCount())
		if action == KeyPageUp {
			delta = -delta
		}
		return m.surface.MoveCursor(delta)
	case KeyActivate:
		if open && m.surface.ActivateCursor() {
			return true
		}
		m.focusVisible = true
		m.Tap(m.focus)
		return true
	case KeyClose:
		if !open {
			return false
		}
		m.CloseAllComponents(true)
		return true
	}
	return false
}
