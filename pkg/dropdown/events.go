package dropdown

// EventKind identifies what happened to a menu.
type EventKind int

const (
	EventOpened EventKind = iota
	EventClosed
	EventRowSelected
)

func (k EventKind) String() string {
	switch k {
	case EventOpened:
		return "opened"
	case EventClosed:
		return "closed"
	case EventRowSelected:
		return "row_selected"
	default:
		return "unknown"
	}
}

// Event is delivered to observers after the delegate has been told. Row is NoRow except
// for EventRowSelected.
type Event struct {
	Kind      EventKind
	Component int
	Row       int
}

type observer struct {
	id int
	fn func(Event)
}

// Observe registers fn to receive every menu event and returns a function that removes it.
// Observers turn the delegate callbacks into a stream of values for hosts that prefer
// messages over interfaces.
func (m *Menu) Observe(fn func(Event)) (cancel func()) {
	m.nextObserver++
	id := m.nextObserver
	m.observers = append(m.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range m.observers {
			if o.id == id {
				m.observers = append(m.observers[:i], m.observers[i+1:]...)
				return
			}
		}
	}
}

func (m *Menu) emit(e Event) {
	for _, o := range append([]observer(nil), m.observers...) {
		o.fn(e)
	}
}

func (m *Menu) notifyOpen(component int) {
	m.log.Debug().Int("component", component).Msg("component opened")
	if d, ok := m.delegate.(OpenHandler); ok {
		d.DidOpen(m, component)
	}
	m.emit(Event{Kind: EventOpened, Component: component, Row: NoRow})
}

func (m *Menu) notifyClose(component int) {
	m.log.Debug().Int("component", component).Msg("component closed")
	if d, ok := m.delegate.(CloseHandler); ok {
		d.DidClose(m, component)
	}
	m.emit(Event{Kind: EventClosed, Component: component, Row: NoRow})
}

func (m *Menu) notifySelect(ip IndexPath) {
	if d, ok := m.delegate.(RowSelectionHandler); ok {
		d.DidSelectRow(m, ip)
	}
	m.emit(Event{Kind: EventRowSelected, Component: ip.Component, Row: ip.Row})
}
