package dropdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionStepClampsAndCompletesOnce(t *testing.T) {
	t.Parallel()

	var progress []float64
	finished := 0
	tr := &Transition{
		kind:   TransitionPresent,
		step:   func(p float64) { progress = append(progress, p) },
		finish: func() { finished++ },
	}

	tr.Step(-1)
	tr.Step(0.5)
	tr.Step(2)
	tr.Complete()
	tr.Complete()
	tr.Step(0.3)

	require.Equal(t, []float64{0, 0.5, 1, 1}, progress)
	require.Equal(t, 1, finished)
	require.True(t, tr.Done())
	require.Equal(t, "present", tr.Kind().String())
}

func TestAnimationGuardDropsRequests(t *testing.T) {
	t.Parallel()

	src := newFakeSource(3, 3)
	m := newTestMenu(src)
	anim := &manualAnimator{}
	m.SetAnimator(anim)
	m.Attach(NewScreen(60, 20))

	m.Open(0, true)
	require.True(t, m.IsAnimating())
	require.Len(t, anim.pending, 1)
	require.Equal(t, TransitionPresent, anim.pending[0].Kind())
	require.Zero(t, m.Surface().Alpha())

	m.Open(1, true)
	m.CloseAllComponents(true)
	m.Tap(1)
	c, _ := m.SelectedComponent()
	require.Equal(t, 0, c)
	require.Len(t, anim.pending, 1)

	anim.finish()
	require.False(t, m.IsAnimating())
	require.Equal(t, 1.0, m.Surface().Alpha())
}

func TestSwitchWaitsForDismissBeforePresenting(t *testing.T) {
	t.Parallel()

	src := newFakeSource(3, 3)
	m := newTestMenu(src)
	m.Attach(NewScreen(60, 20))
	m.Open(0, false)

	anim := &manualAnimator{}
	m.SetAnimator(anim)
	src.reset()

	m.Open(1, true)
	require.Equal(t, []string{"didClose(0)"}, src.calls)
	_, open := m.SelectedComponent()
	require.False(t, open)
	require.Len(t, anim.pending, 1)
	require.Equal(t, TransitionDismiss, anim.pending[0].Kind())

	anim.pending[0].Step(0.5)
	require.InDelta(t, 0.5, m.Surface().Alpha(), 1e-9)

	anim.finish()
	c, open := m.SelectedComponent()
	require.True(t, open)
	require.Equal(t, 1, c)
	require.Equal(t, []string{"didClose(0)", "didOpen(1)"}, src.calls)
	require.True(t, m.Surface().Attached())
	require.Equal(t, 1, m.Surface().Component())
}

func TestZeroDurationCompletesSynchronously(t *testing.T) {
	t.Parallel()

	m := newTestMenu(newFakeSource(2), WithAnimationDuration(0))
	anim := &manualAnimator{}
	m.SetAnimator(anim)
	m.Attach(NewScreen(60, 20))

	m.Open(0, true)
	require.False(t, m.IsAnimating())
	require.Empty(t, anim.pending)
	require.True(t, m.Surface().Attached())
}

func TestScrollInsetIsRestoredOnDismiss(t *testing.T) {
	t.Parallel()

	m := newTestMenu(newFakeSource(8))
	m.SetFrame(R(0, 25, 60, 1))
	scroller := &fakeScroller{width: 60, height: 12, size: Size{Width: 60, Height: 30}, inset: Insets{Bottom: 2}}
	m.Attach(scroller)

	m.Open(0, false)
	// The panel holds 8 rows and 2 separators: 26 + 10 + 1 = 37, which is 5 past 30 + 2.
	require.Equal(t, 7, scroller.inset.Bottom)
	require.Zero(t, scroller.offset.Y)

	m.CloseAllComponents(false)
	require.Equal(t, 2, scroller.inset.Bottom)
}

func TestScrollOffsetRevealsPanel(t *testing.T) {
	t.Parallel()

	m := newTestMenu(newFakeSource(5))
	m.SetFrame(R(0, 20, 60, 1))
	opts := m.Options()
	opts.AdjustsContentOffset = true
	m.SetOptions(opts)
	scroller := &fakeScroller{width: 60, height: 10, size: Size{Width: 60, Height: 40}, offset: Point{Y: 15}}
	m.Attach(scroller)

	m.Open(0, false)
	// 21 + 7 + 1 = 29 must fit in the 10-line window.
	require.Equal(t, 19, scroller.offset.Y)

	m.CloseAllComponents(false)
	require.Equal(t, 19, scroller.offset.Y)
}

func TestNegativeOffsetClampedOnDismiss(t *testing.T) {
	t.Parallel()

	m := newTestMenu(newFakeSource(5), WithContentAbove(true))
	m.SetFrame(R(0, 3, 60, 1))
	opts := m.Options()
	opts.AdjustsContentOffset = true
	m.SetOptions(opts)
	scroller := &fakeScroller{width: 60, height: 10, size: Size{Width: 60, Height: 40}}
	m.Attach(scroller)

	m.Open(0, false)
	// The panel needs 7 lines above row 3.
	require.Equal(t, -4, scroller.offset.Y)
	require.True(t, m.Surface().Above())

	m.CloseAllComponents(false)
	require.Zero(t, scroller.offset.Y)
}

func TestReloadDuringSwitch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		rows      []int
		wantCalls []string
		wantOpen  bool
	}{
		{
			name:      "target removed",
			rows:      []int{3},
			wantCalls: []string{"didClose(0)"},
		},
		{
			name:      "target kept",
			rows:      []int{3, 3, 3, 3},
			wantCalls: []string{"didClose(0)", "didOpen(2)"},
			wantOpen:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := newFakeSource(3, 3, 3)
			m := newTestMenu(src)
			m.Attach(NewScreen(60, 20))
			m.Open(0, false)

			anim := &manualAnimator{}
			m.SetAnimator(anim)
			src.reset()

			m.Open(2, true)
			require.True(t, m.IsAnimating())

			src.rows = tc.rows
			m.Reload()
			anim.finish()

			require.Equal(t, tc.wantCalls, src.calls)
			require.Equal(t, len(tc.rows), m.NumberOfComponents())
			c, open := m.SelectedComponent()
			require.Equal(t, tc.wantOpen, open)
			require.Equal(t, tc.wantOpen, m.Surface().Attached())
			if open {
				require.Equal(t, 2, c)
			}
		})
	}
}

func TestDetachAbandonsSwitch(t *testing.T) {
	t.Parallel()

	src := newFakeSource(3, 3, 3)
	m := newTestMenu(src)
	screen := NewScreen(60, 20)
	m.Attach(screen)
	m.Open(0, false)

	anim := &manualAnimator{}
	m.SetAnimator(anim)
	src.reset()

	m.Open(2, true)
	m.Detach()

	require.Equal(t, []string{"didClose(0)"}, src.calls)
	require.False(t, m.IsAnimating())
	require.False(t, m.Surface().Attached())
	require.Empty(t, screen.Surfaces())
	require.Nil(t, m.Container())
	_, open := m.SelectedComponent()
	require.False(t, open)

	// The abandoned transition is already complete; finishing it again changes nothing.
	anim.finish()
	require.Equal(t, []string{"didClose(0)"}, src.calls)
	require.False(t, m.Surface().Attached())
}
