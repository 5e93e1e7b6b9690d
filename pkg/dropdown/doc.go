// Package dropdown implements a multi-component dropdown menu header bar for terminal user
// interfaces.
//
// A Menu renders a horizontal bar of segments, one per component reported by its
// DataSource. Activating a segment presents a Surface listing that component's rows,
// positioned under (or above) the bar inside a Container. Only one component is open at a
// time; opening another closes the current one first. When the container scrolls, the menu
// temporarily enlarges its bottom inset so the panel can always be reached, and restores it
// when the panel is dismissed.
//
// The package has no dependency on a particular event loop. Hosts drive presentation
// through an Animator and forward input with Tap, HandleClick and HandleKey. The tui
// subpackage provides a bubbletea host.
package dropdown
