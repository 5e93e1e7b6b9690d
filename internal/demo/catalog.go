package demo

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/dropmenu/internal/config"
)

// Catalog is the data behind a demo menu: a list of components, each with its rows.
type Catalog interface {
	Len() int
	Component(c int) ComponentInfo
	Rows(c int) []Entry
}

// ComponentInfo describes one segment.
type ComponentInfo struct {
	Title         string
	SelectedTitle string
	Width         int
	MaxRows       int
	RowHeight     int
	FullRow       bool
	Enabled       bool
	Highlight     lipgloss.TerminalColor
}

// Entry is one row.
type Entry struct {
	Title      string
	Detail     string
	Background lipgloss.TerminalColor
	Selected   bool
}

// DocumentCatalog serves the components of a menu document.
type DocumentCatalog struct {
	doc *config.Document
}

// NewDocumentCatalog wraps a validated document.
func NewDocumentCatalog(doc *config.Document) *DocumentCatalog {
	return &DocumentCatalog{doc: doc}
}

func (d *DocumentCatalog) Len() int { return len(d.doc.Components) }

func (d *DocumentCatalog) Component(c int) ComponentInfo {
	comp := d.doc.Components[c]
	info := ComponentInfo{
		Title:         comp.Title,
		SelectedTitle: comp.SelectedTitle,
		Width:         comp.Width,
		MaxRows:       comp.MaxRows,
		RowHeight:     comp.RowHeight,
		FullRow:       comp.UsesFullRow(),
		Enabled:       comp.IsEnabled(),
	}
	if comp.Highlight != "" {
		info.Highlight = lipgloss.Color(comp.Highlight)
	}
	return info
}

func (d *DocumentCatalog) Rows(c int) []Entry {
	rows := d.doc.Components[c].Rows
	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = Entry{Title: r.Title, Detail: r.Accessory, Selected: r.Selected}
		if r.Background != "" {
			entries[i].Background = lipgloss.Color(r.Background)
		}
	}
	return entries
}
