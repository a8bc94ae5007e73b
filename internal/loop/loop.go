// Package loop drives the dashboard: draw a frame, wait for input no longer
// than the rest of the current tick, dispatch it, and run the tick hook when
// a tick interval has elapsed.
package loop

import (
	"log/slog"
	"time"

	"github.com/rescp17/leightbox/internal/input"
	"github.com/rescp17/leightbox/internal/render"
	"github.com/rescp17/leightbox/internal/session"
)

// DefaultTickRate is the tick interval used when none is configured.
const DefaultTickRate = 200 * time.Millisecond

// Surface is where frames are drawn. Begin puts the terminal into the mode the
// dashboard needs and End restores it; End must be safe to call after a
// failed Begin and more than once.
type Surface interface {
	Begin() error
	Draw(layout render.Layout) error
	End() error
}

// Input is the source of keyboard events. Poll waits at most timeout and
// reports whether an event is ready; Read returns it.
type Input interface {
	Poll(timeout time.Duration) (bool, error)
	Read() (input.Event, error)
}

// TickFunc is run once per tick interval.
type TickFunc func(s *session.Session)

// Loop owns the session for the duration of a run.
type Loop struct {
	surface  Surface
	input    Input
	session  *session.Session
	tickRate time.Duration
	onTick   TickFunc
	now      func() time.Time
}

// Option configures a Loop.
type Option func(*Loop)

// WithTickRate sets the tick interval. Non-positive values are ignored.
func WithTickRate(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.tickRate = d
		}
	}
}

// WithTickHook replaces the per-tick maintenance hook.
func WithTickHook(fn TickFunc) Option {
	return func(l *Loop) {
		if fn != nil {
			l.onTick = fn
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a loop over the given collaborators.
func New(surface Surface, in Input, s *session.Session, opts ...Option) *Loop {
	l := &Loop{
		surface:  surface,
		input:    in,
		session:  s,
		tickRate: DefaultTickRate,
		onTick:   (*session.Session).OnTick,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// PollTimeout is how long the loop may wait for input when elapsed time has
// passed since the last tick. It is never negative.
func PollTimeout(tickRate, elapsed time.Duration) time.Duration {
	if elapsed >= tickRate {
		return 0
	}
	return tickRate - elapsed
}

// Run iterates until the session asks to quit or a collaborator fails. It
// does not touch the surface mode; see Start.
func (l *Loop) Run() error {
	lastTick := l.now()
	slog.Info("Control loop started", "session", l.session.ID(), "tick_rate", l.tickRate)

	for {
		if err := l.surface.Draw(render.Project(l.session)); err != nil {
			return &SurfaceError{Op: "draw", Err: err}
		}

		timeout := PollTimeout(l.tickRate, l.now().Sub(lastTick))
		ready, err := l.input.Poll(timeout)
		if err != nil {
			return &InputError{Op: "poll", Err: err}
		}
		if ready {
			ev, err := l.input.Read()
			if err != nil {
				return &InputError{Op: "read", Err: err}
			}
			if _, ok := ev.(input.KeyEvent); ok {
				l.session.Handle(ev)
			}
		}

		if l.now().Sub(lastTick) >= l.tickRate {
			l.onTick(l.session)
			lastTick = l.now()
		}

		if l.session.ShouldQuit() {
			slog.Info("Control loop stopped", "session", l.session.ID())
			return nil
		}
	}
}

// Start begins the surface, runs the loop and ends the surface on every exit
// path. A loop error takes precedence over an error from End.
func Start(surface Surface, in Input, s *session.Session, opts ...Option) (err error) {
	defer func() {
		if endErr := surface.End(); endErr != nil {
			endErr = &SurfaceError{Op: "end", Err: endErr}
			if err == nil {
				err = endErr
			} else {
				slog.Warn("Failed to restore terminal", "error", endErr)
			}
		}
	}()

	if err := surface.Begin(); err != nil {
		return &SurfaceError{Op: "begin", Err: err}
	}
	return New(surface, in, s, opts...).Run()
}
