package dropdown

import (
	"time"
)

// TransitionKind tells presentations from dismissals.
type TransitionKind int

const (
	TransitionPresent TransitionKind = iota
	TransitionDismiss
)

func (k TransitionKind) String() string {
	if k == TransitionPresent {
		return "present"
	}
	return "dismiss"
}

// Transition is an in-flight present or dismiss animation. The menu begins it and hands it
// to an Animator, which reports progress through Step and must eventually call Complete.
// Complete may be called early to skip the animation and is safe to call more than once.
type Transition struct {
	kind     TransitionKind
	duration time.Duration
	step     func(progress float64)
	finish   func()
	done     bool
}

// Kind tells whether the transition presents or dismisses.
func (t *Transition) Kind() TransitionKind { return t.kind }

// Duration is how long the animation should take.
func (t *Transition) Duration() time.Duration { return t.duration }

// Done reports whether Complete has run.
func (t *Transition) Done() bool { return t.done }

// Step applies the visual state for progress in [0, 1].
func (t *Transition) Step(progress float64) {
	if t.done || t.step == nil {
		return
	}
	t.step(min(1, max(0, progress)))
}

// Complete snaps to the final visual state and runs the completion. Later calls do nothing.
func (t *Transition) Complete() {
	if t.done {
		return
	}
	t.Step(1)
	t.done = true
	if t.finish != nil {
		t.finish()
	}
}

// Animator runs transitions. Implementations must call Complete on every transition they
// receive, on the same goroutine that owns the menu.
type Animator interface {
	Animate(t *Transition)
}

// AnimatorFunc adapts a function to Animator.
type AnimatorFunc func(t *Transition)

// Animate calls f.
func (f AnimatorFunc) Animate(t *Transition) { f(t) }

// transitioner presents and dismisses the menu's surface and owns the animation guard.
type transitioner struct {
	menu    *Menu
	surface *Surface

	container Container
	// previousBottomInset is the scroll container's bottom inset before the menu enlarged
	// it; hasPreviousInset is false when there is nothing to restore.
	previousBottomInset int
	hasPreviousInset    bool

	animating bool
	active    *Transition
	// generation is bumped when pending completions are abandoned.
	generation int
}

func (tr *transitioner) begin(kind TransitionKind, step func(float64), finish func()) {
	t := &Transition{
		kind:     kind,
		duration: tr.menu.opts.AnimationDuration,
		step:     step,
	}
	tr.animating = true
	tr.active = t
	t.finish = func() {
		tr.animating = false
		tr.active = nil
		finish()
	}

	if tr.menu.animator == nil || t.duration <= 0 {
		t.Complete()
		return
	}
	tr.menu.animator.Animate(t)
}

// settle completes the running transition. Unless keepCompletion is set, the completion
// handed to present or dismiss is dropped.
func (tr *transitioner) settle(keepCompletion bool) {
	t := tr.active
	if t == nil {
		return
	}
	if !keepCompletion {
		tr.generation++
	}
	t.Complete()
}

// guarded wraps completion so that settle(false) can drop it.
func (tr *transitioner) guarded(completion func()) func() {
	if completion == nil {
		return nil
	}
	gen := tr.generation
	return func() {
		if tr.generation == gen {
			completion()
		}
	}
}

// present shows the surface inside c. The surface must already be configured for the
// component being opened.
func (tr *transitioner) present(c Container, animated bool, completion func()) {
	completion = tr.guarded(completion)
	tr.container = c
	sf := tr.surface

	sf.willAppear()

	p := tr.menu.placementFor(c, sf)
	sf.place(p)

	adjust := func() {}
	if p.scrolls {
		scroller := c.(ScrollContainer)
		adjust = func() { tr.adjustScroll(scroller, p) }
	}

	c.AddSurface(sf)
	sf.attached = true

	tr.menu.log.Debug().
		Int("component", sf.component).
		Bool("above", p.above).
		Interface("frame", p.frame).
		Int("content_height", sf.ContentHeight()).
		Msg("presenting dropdown")

	if !animated {
		adjust()
		sf.didAppear()
		callIfSet(completion)
		return
	}

	sf.alpha = 0
	sf.reveal = 0
	adjust()
	tr.begin(TransitionPresent, func(progress float64) {
		sf.alpha = progress
		sf.reveal = progress
	}, func() {
		sf.didAppear()
		callIfSet(completion)
	})
}

func (tr *transitioner) adjustScroll(scroller ScrollContainer, p placement) {
	opts := tr.menu.opts
	if opts.AdjustsContentInset && p.overflow > 0 {
		inset := scroller.ContentInset()
		tr.previousBottomInset = inset.Bottom
		tr.hasPreviousInset = true
		inset.Bottom += p.overflow
		scroller.SetContentInset(inset)
		tr.menu.log.Debug().Int("overflow", p.overflow).Msg("enlarged scroll bottom inset")
	}

	if !opts.AdjustsContentOffset {
		return
	}
	current := scroller.ContentOffset()
	if (p.above && p.targetOffset < current.Y) || (!p.above && current.Y < p.targetOffset) {
		scroller.SetContentOffset(Point{X: current.X, Y: p.targetOffset})
		tr.menu.log.Debug().Int("offset", p.targetOffset).Msg("scrolled to reveal dropdown")
	}
}

func (tr *transitioner) resetScroll() {
	scroller, ok := tr.container.(ScrollContainer)
	if !ok {
		return
	}
	if tr.hasPreviousInset {
		inset := scroller.ContentInset()
		inset.Bottom = tr.previousBottomInset
		scroller.SetContentInset(inset)
		tr.hasPreviousInset = false
	}
	if tr.menu.opts.AdjustsContentOffset {
		if offset := scroller.ContentOffset(); offset.Y < 0 {
			scroller.SetContentOffset(Point{X: offset.X, Y: 0})
		}
	}
}

// dismiss hides the surface. The completion runs once the surface has left its container.
func (tr *transitioner) dismiss(animated bool, completion func()) {
	completion = tr.guarded(completion)
	sf := tr.surface
	c := tr.container
	if !sf.attached || c == nil {
		callIfSet(completion)
		return
	}

	sf.willDisappear()
	tr.resetScroll()
	tr.container = nil

	remove := func() {
		c.RemoveSurface(sf)
		sf.attached = false
		sf.alpha = 1
		sf.reveal = 1
		sf.didDisappear()
	}

	if !animated {
		remove()
		callIfSet(completion)
		return
	}

	tr.begin(TransitionDismiss, func(progress float64) {
		sf.alpha = 1 - progress
		sf.reveal = 1 - progress
	}, func() {
		remove()
		callIfSet(completion)
	})
}

// relayout re-applies the horizontal placement after the bar moved or resized.
func (tr *transitioner) relayout() {
	if tr.container == nil || !tr.surface.attached {
		return
	}
	p := tr.menu.placementFor(tr.container, tr.surface)
	tr.surface.left = p.left
	tr.surface.right = p.right
}

func callIfSet(fn func()) {
	if fn != nil {
		fn()
	}
}
