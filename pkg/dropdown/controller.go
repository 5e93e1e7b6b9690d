package dropdown

// SelectedComponent returns the open component. ok is false when every component is closed.
func (m *Menu) SelectedComponent() (component int, ok bool) {
	return m.selected, m.selected != noComponent
}

// IsAnimating reports whether a present or dismiss transition is in flight. Open,
// CloseAllComponents and taps are ignored while it is.
func (m *Menu) IsAnimating() bool { return m.transition.animating }

// Open shows the rows of component. An already open component is closed first; its close
// is reported before the new component's open.
func (m *Menu) Open(component int, animated bool) {
	if !m.validComponent("Menu.Open", component) {
		return
	}
	if m.transition.animating {
		m.log.Debug().Int("component", component).Msg("open ignored while animating")
		return
	}

	present := func() {
		if component >= len(m.rows) {
			m.log.Debug().Int("component", component).Msg("open dropped, component removed by reload")
			return
		}
		m.selected = component
		m.presentSelected(animated)
		m.notifyOpen(component)
	}

	if m.selected == noComponent {
		present()
		return
	}
	m.cleanupSelected()
	m.dismiss(animated, present)
}

// CloseAllComponents closes the open component, if any.
func (m *Menu) CloseAllComponents(animated bool) {
	if m.transition.animating {
		m.log.Debug().Msg("close ignored while animating")
		return
	}
	m.cleanupSelected()
	m.dismiss(animated, nil)
}

// closeImmediately closes without animation, cutting short any running transition and
// dropping what it would have done next.
func (m *Menu) closeImmediately() {
	m.transition.settle(false)
	m.cleanupSelected()
	m.dismiss(false, nil)
}

// cleanupSelected resets the open state and reports the close.
func (m *Menu) cleanupSelected() {
	previous := m.selected
	m.selected = noComponent
	if previous != noComponent {
		m.notifyClose(previous)
	}
}

func (m *Menu) presentSelected(animated bool) {
	c := m.selected
	m.surface.configure(c, m.rowHeight(c), m.highlightColor(c))
	m.surface.Refresh()
	m.markSelected(c)

	if m.container == nil {
		m.log.Debug().Int("component", c).Msg("no container attached, dropdown not shown")
		return
	}
	m.transition.present(m.container, animated, nil)
}

func (m *Menu) dismiss(animated bool, completion func()) {
	m.markSelected(noComponent)
	m.transition.dismiss(animated, completion)
}

// surfaceWillDisappear runs whenever the surface starts leaving its container. Dismissals
// the menu did not start itself still close the open component.
func (m *Menu) surfaceWillDisappear() {
	if m.selected == noComponent {
		return
	}
	m.cleanupSelected()
	m.markSelected(noComponent)
}

func (m *Menu) didSelectRow(row int) {
	if m.selected == noComponent {
		return
	}
	m.notifySelect(IndexPath{Component: m.selected, Row: row})
}

func (m *Menu) openRowCount() int {
	if m.selected == noComponent || m.selected >= len(m.rows) {
		return 0
	}
	return m.rows[m.selected]
}

func (m *Menu) openMaxRows() int {
	if m.selected == noComponent {
		return 0
	}
	return m.maxRows(m.selected)
}

// placementFor computes where the surface goes inside c and records the space its rows may
// use.
func (m *Menu) placementFor(c Container, sf *Surface) placement {
	in := placementInput{
		bar:                m.frame,
		bounds:             c.Bounds(),
		fullRow:            m.usesFullRowWidth(sf.component),
		above:              m.opts.ShowsContentAbove,
		useFullScreenWidth: m.opts.UseFullScreenWidth,
		insetLeft:          m.opts.FullScreenInsetLeft,
		insetRight:         m.opts.FullScreenInsetRight,
		adjustsInset:       m.opts.AdjustsContentInset,
	}
	if n := len(m.segments); n > 0 {
		in.first = m.segments[0].frame.Offset(m.frame.X, m.frame.Y)
		in.last = m.segments[n-1].frame.Offset(m.frame.X, m.frame.Y)
		if sf.component >= 0 && sf.component < n {
			in.segment = m.segments[sf.component].frame.Offset(m.frame.X, m.frame.Y)
		}
	}
	if sc, ok := c.(ScrollContainer); ok {
		in.scroller = sc
	}

	sf.above = in.above
	sf.available = availableRowSpace(in)
	return computePlacement(in, sf.ContentHeight())
}
