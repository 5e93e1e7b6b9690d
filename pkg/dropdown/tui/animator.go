package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
)

const (
	defaultFPS    = 60
	// settleFactor relates a critically damped spring's angular frequency to the time it
	// needs to get within 1% of its target.
	settleFactor  = 6.6
	settleEpsilon = 0.001
)

// frameMsg advances the transition with the given id by one frame.
type frameMsg struct {
	id int
}

type springRun struct {
	transition *dropdown.Transition
	spring     harmonica.Spring
	pos, vel   float64
	frames     int
	maxFrames  int
}

// SpringAnimator plays menu transitions frame by frame on a harmonica spring. Transitions
// handed to Animate start ticking with the next command returned by Cmd or Update.
type SpringAnimator struct {
	fps     int
	frame   time.Duration
	next    int
	running map[int]*springRun
	started []int
}

// NewSpringAnimator creates an animator running at fps frames per second. Values <= 0
// select 60.
func NewSpringAnimator(fps int) *SpringAnimator {
	if fps <= 0 {
		fps = defaultFPS
	}
	return &SpringAnimator{
		fps:     fps,
		frame:   time.Second / time.Duration(fps),
		running: make(map[int]*springRun),
	}
}

// Animate implements dropdown.Animator.
func (a *SpringAnimator) Animate(t *dropdown.Transition) {
	d := t.Duration()
	frequency := settleFactor / max(d.Seconds(), 1e-3)
	a.next++
	a.running[a.next] = &springRun{
		transition: t,
		spring:     harmonica.NewSpring(harmonica.FPS(a.fps), frequency, 1.0),
		maxFrames:  max(1, int(math.Ceil(float64(d)/float64(a.frame)))),
	}
	a.started = append(a.started, a.next)
}

// Running reports how many transitions are in flight.
func (a *SpringAnimator) Running() int { return len(a.running) }

// Cmd schedules the first frame of every transition started since the last call.
func (a *SpringAnimator) Cmd() tea.Cmd {
	if len(a.started) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(a.started))
	for _, id := range a.started {
		cmds = append(cmds, a.tick(id))
	}
	a.started = nil
	return tea.Batch(cmds...)
}

// Update advances a transition on its frame message. It reports whether msg belonged to
// the animator.
func (a *SpringAnimator) Update(msg tea.Msg) (bool, tea.Cmd) {
	fm, ok := msg.(frameMsg)
	if !ok {
		return false, nil
	}
	run, ok := a.running[fm.id]
	if !ok {
		return true, nil
	}

	run.pos, run.vel = run.spring.Update(run.pos, run.vel, 1)
	run.frames++
	run.transition.Step(run.pos)

	settled := math.Abs(1-run.pos) < settleEpsilon && math.Abs(run.vel) < settleEpsilon
	if settled || run.frames >= run.maxFrames {
		delete(a.running, fm.id)
		// Completing may start the next transition, which Cmd then schedules.
		run.transition.Complete()
		return true, a.Cmd()
	}
	return true, a.tick(fm.id)
}

// Flush completes every running transition immediately.
func (a *SpringAnimator) Flush() {
	for len(a.running) > 0 {
		for id, run := range a.running {
			delete(a.running, id)
			run.transition.Complete()
		}
	}
	a.started = nil
}

func (a *SpringAnimator) tick(id int) tea.Cmd {
	return tea.Tick(a.frame, func(time.Time) tea.Msg { return frameMsg{id: id} })
}
