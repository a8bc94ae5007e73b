package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/rescp17/leightbox/internal/input"
	"github.com/rescp17/leightbox/internal/render"
)

const eventBufferSize = 64

var (
	ErrNotTerminal    = errors.New("output is not a terminal")
	ErrNotStarted     = errors.New("terminal not started")
	ErrProgramExited  = errors.New("terminal program exited")
	ErrNoPendingEvent = errors.New("no pending input event")
)

// frameMsg carries a freshly projected layout into the program.
type frameMsg render.Layout

// relay is the bubbletea model behind Terminal. It keeps no dashboard state:
// it paints the last layout it was sent and forwards input as events.
type relay struct {
	layout render.Layout
	width  int
	height int
	events chan<- input.Event
}

func (r relay) Init() tea.Cmd {
	return nil
}

func (r relay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		r.layout = render.Layout(msg)
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
	case tea.KeyMsg:
		r.forward(input.KeyEvent{Code: keyCode(msg)})
	case tea.MouseMsg, tea.FocusMsg, tea.BlurMsg:
		r.forward(input.OtherEvent{})
	}
	return r, nil
}

func (r relay) View() string {
	return Paint(r.layout, r.width, r.height)
}

// forward never blocks the program; a full buffer drops the event.
func (r relay) forward(ev input.Event) {
	select {
	case r.events <- ev:
	default:
		slog.Warn("Input event dropped, buffer full", "event", fmt.Sprintf("%T", ev))
	}
}

func keyCode(msg tea.KeyMsg) input.KeyCode {
	switch msg.Type {
	case tea.KeyEnter:
		if !msg.Alt {
			return input.Enter
		}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return input.Rune(msg.Runes[0])
		}
	}
	return input.Named(msg.String())
}

// Terminal is the render surface and input source of the control loop,
// backed by a bubbletea program on the alternate screen.
type Terminal struct {
	output io.Writer
	in     io.Reader

	program    *tea.Program
	events     chan input.Event
	done       chan error
	exited     bool
	pending    input.Event
	hasPending bool
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithOutput draws to w instead of stdout. w must be a terminal.
func WithOutput(w io.Writer) TerminalOption {
	return func(t *Terminal) {
		t.output = w
	}
}

// WithInput reads keys from r instead of stdin.
func WithInput(r io.Reader) TerminalOption {
	return func(t *Terminal) {
		t.in = r
	}
}

func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{output: os.Stdout}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Begin switches the terminal to the alternate screen and starts reading keys
// and mouse events.
func (t *Terminal) Begin() error {
	if t.program != nil {
		return nil
	}
	f, ok := t.output.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return ErrNotTerminal
	}
	t.start(t.programOptions()...)
	return nil
}

func (t *Terminal) programOptions() []tea.ProgramOption {
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(t.output),
	}
	if t.in != nil {
		opts = append(opts, tea.WithInput(t.in))
	}
	return opts
}

// start runs the relay program on its own goroutine; its result lands in done.
func (t *Terminal) start(opts ...tea.ProgramOption) {
	t.events = make(chan input.Event, eventBufferSize)
	t.done = make(chan error, 1)
	t.exited = false
	t.program = tea.NewProgram(relay{events: t.events}, opts...)

	go func() {
		_, err := t.program.Run()
		t.done <- err
	}()
}

// Draw hands a layout to the program, which paints it on its next frame.
func (t *Terminal) Draw(l render.Layout) error {
	if t.program == nil {
		return ErrNotStarted
	}
	if err := t.checkExited(); err != nil {
		return err
	}
	t.program.Send(frameMsg(l))
	return nil
}

// Poll waits up to timeout for a key or other input event.
func (t *Terminal) Poll(timeout time.Duration) (bool, error) {
	if t.hasPending {
		return true, nil
	}
	if t.program == nil {
		return false, ErrNotStarted
	}
	if t.exited {
		return false, ErrProgramExited
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.events:
		t.pending = ev
		t.hasPending = true
		return true, nil
	case err := <-t.done:
		return false, t.markExited(err)
	case <-timer.C:
		return false, nil
	}
}

// Read returns the event found by the last successful Poll.
func (t *Terminal) Read() (input.Event, error) {
	if !t.hasPending {
		return nil, ErrNoPendingEvent
	}
	ev := t.pending
	t.pending = nil
	t.hasPending = false
	return ev, nil
}

// End stops the program and waits until it has restored the terminal. It is
// a no-op when the terminal was never started or has already been ended.
func (t *Terminal) End() error {
	if t.program == nil {
		return nil
	}
	var err error
	if !t.exited {
		t.program.Quit()
		err = <-t.done
		t.exited = true
	}
	t.program = nil
	t.hasPending = false
	t.pending = nil
	if err != nil {
		return fmt.Errorf("stop terminal program: %w", err)
	}
	return nil
}

func (t *Terminal) checkExited() error {
	if t.exited {
		return ErrProgramExited
	}
	select {
	case err := <-t.done:
		return t.markExited(err)
	default:
		return nil
	}
}

func (t *Terminal) markExited(err error) error {
	t.exited = true
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProgramExited, err)
	}
	return ErrProgramExited
}
