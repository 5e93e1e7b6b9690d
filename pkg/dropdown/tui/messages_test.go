package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
)

func TestEventQueueTranslatesAndDrains(t *testing.T) {
	t.Parallel()

	q := &eventQueue{}
	require.Nil(t, q.drain())

	observe := q.observe(3)
	observe(dropdown.Event{Kind: dropdown.EventRowSelected, Component: 1, Row: 4})
	cmd := q.drain()
	require.NotNil(t, cmd)
	require.Equal(t, RowSelectedMsg{Menu: 3, Index: dropdown.IndexPath{Component: 1, Row: 4}}, cmd())
	require.Nil(t, q.drain())

	observe(dropdown.Event{Kind: dropdown.EventOpened, Component: 2, Row: dropdown.NoRow})
	observe(dropdown.Event{Kind: dropdown.EventClosed, Component: 2, Row: dropdown.NoRow})
	require.Equal(t, []tea.Msg{
		ComponentOpenedMsg{Menu: 3, Component: 2},
		ComponentClosedMsg{Menu: 3, Component: 2},
	}, messages(q.drain()))
}
