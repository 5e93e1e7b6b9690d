package dropdown

import (
	"github.com/charmbracelet/lipgloss"
)

const rowCellIdentifier = "dropdown.row"

// rowCell is the recyclable binding between a visible row and its delegate content.
type rowCell struct {
	row        int
	custom     View
	title      string
	accessory  View
	background lipgloss.TerminalColor
}

// prepareForReuse clears per-row state. The custom view survives so the delegate can be
// handed it back as the reusable view.
func (c *rowCell) prepareForReuse() {
	c.row = NoRow
	c.title = ""
	c.accessory = nil
	c.background = nil
}

// cellPool recycles cells by identifier.
type cellPool struct {
	factories map[string]func() any
	free      map[string][]any
}

func newCellPool() *cellPool {
	return &cellPool{
		factories: make(map[string]func() any),
		free:      make(map[string][]any),
	}
}

func (p *cellPool) register(id string, factory func() any) {
	p.factories[id] = factory
}

// dequeue returns a recycled cell, or a fresh one when none is free. It returns nil for an
// unregistered identifier.
func (p *cellPool) dequeue(id string) any {
	if free := p.free[id]; len(free) > 0 {
		c := free[len(free)-1]
		p.free[id] = free[:len(free)-1]
		return c
	}
	if factory, ok := p.factories[id]; ok {
		return factory()
	}
	return nil
}

func (p *cellPool) enqueue(id string, c any) {
	p.free[id] = append(p.free[id], c)
}
