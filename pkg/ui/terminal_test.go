package ui

import (
	"bytes"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rescp17/leightbox/internal/input"
	"github.com/rescp17/leightbox/internal/render"
	"github.com/rescp17/leightbox/internal/session"
)

func newTestRelay(buffer int) (relay, chan input.Event) {
	events := make(chan input.Event, buffer)
	return relay{events: events}, events
}

func TestRelay_ForwardsKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want input.KeyCode
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, input.Rune('j')},
		{"quit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, input.Rune('q')},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, input.Enter},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}, Alt: true}, input.Named("alt+j")},
		{"alt+enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, input.Named("alt+enter")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, input.Named("ctrl+c")},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, input.Named("esc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, events := newTestRelay(1)
			r.Update(tt.msg)

			require.Len(t, events, 1)
			ev := <-events
			assert.Equal(t, input.KeyEvent{Code: tt.want}, ev)
		})
	}
}

func TestRelay_ForwardsOtherEvents(t *testing.T) {
	r, events := newTestRelay(1)

	r.Update(tea.MouseMsg{})

	require.Len(t, events, 1)
	assert.Equal(t, input.OtherEvent{}, <-events)
}

func TestRelay_StoresFrameAndSize(t *testing.T) {
	r, events := newTestRelay(1)
	layout := render.Project(session.New(session.Config{Title: "frame title", Mode: session.Client}))

	m, _ := r.Update(frameMsg(layout))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	got := m.(relay)

	assert.Equal(t, "frame title", got.layout.Title)
	assert.Equal(t, 100, got.width)
	assert.Equal(t, 30, got.height)
	assert.Empty(t, events, "frames and resizes are not input events")
	assert.Contains(t, got.View(), "frame title")
}

func TestRelay_DropsWhenBufferFull(t *testing.T) {
	r, events := newTestRelay(1)
	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}

	done := make(chan struct{})
	go func() {
		r.Update(key)
		r.Update(key)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay blocked on a full event buffer")
	}
	assert.Len(t, events, 1)
}

func TestTerminal_BeginRequiresTerminal(t *testing.T) {
	term := NewTerminal(WithOutput(&bytes.Buffer{}))

	assert.ErrorIs(t, term.Begin(), ErrNotTerminal)
	assert.NoError(t, term.End(), "End after a failed Begin is a no-op")
}

func TestTerminal_NotStarted(t *testing.T) {
	term := NewTerminal()

	assert.ErrorIs(t, term.Draw(render.Layout{}), ErrNotStarted)
	_, err := term.Poll(time.Millisecond)
	assert.ErrorIs(t, err, ErrNotStarted)
	_, err = term.Read()
	assert.ErrorIs(t, err, ErrNoPendingEvent)
	assert.NoError(t, term.End())
	assert.NoError(t, term.End())
}

func TestKeyCode_MultiRunePaste(t *testing.T) {
	code := keyCode(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("jj")})

	assert.Equal(t, input.KeyOther, code.Type)
}

// startPiped runs the terminal program against a pipe for keys and a buffer
// for output instead of a real tty.
func startPiped(t *testing.T) (*Terminal, *io.PipeWriter, *bytes.Buffer) {
	t.Helper()
	pr, pw := io.Pipe()
	out := &bytes.Buffer{}
	term := NewTerminal(WithOutput(out), WithInput(pr))
	term.start(term.programOptions()...)
	t.Cleanup(func() {
		_ = term.End()
		_ = pw.Close()
	})
	return term, pw, out
}

func TestTerminal_PollReadEnd(t *testing.T) {
	term, pw, out := startPiped(t)

	require.NoError(t, term.Draw(render.Layout{Title: "piped"}))

	ready, err := term.Poll(20 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ready, "no key was typed, so the poll times out")

	_, err = pw.Write([]byte("j"))
	require.NoError(t, err)

	ready, err = term.Poll(time.Second)
	require.NoError(t, err)
	require.True(t, ready)

	ready, err = term.Poll(0)
	require.NoError(t, err)
	assert.True(t, ready, "the pending event is kept until it is read")

	ev, err := term.Read()
	require.NoError(t, err)
	assert.Equal(t, input.KeyEvent{Code: input.Rune('j')}, ev)

	_, err = term.Read()
	assert.ErrorIs(t, err, ErrNoPendingEvent)

	require.NoError(t, term.End())
	require.NoError(t, term.End())

	_, err = term.Poll(time.Millisecond)
	assert.ErrorIs(t, err, ErrNotStarted)

	// the options Begin uses switched on the alternate screen and mouse reporting
	assert.Contains(t, out.String(), "\x1b[?1049h", "alternate screen")
	assert.Contains(t, out.String(), "\x1b[?1002h", "mouse cell motion")
}

func TestTerminal_ProgramExitEndsPoll(t *testing.T) {
	term, _, _ := startPiped(t)

	term.program.Quit()

	_, err := term.Poll(5 * time.Second)
	assert.ErrorIs(t, err, ErrProgramExited)
	assert.ErrorIs(t, term.Draw(render.Layout{}), ErrProgramExited)
	_, err = term.Poll(time.Millisecond)
	assert.ErrorIs(t, err, ErrProgramExited)

	assert.NoError(t, term.End(), "End after the program exited on its own")
	assert.NoError(t, term.End())
}

func TestTerminal_BeginAfterStartIsNoop(t *testing.T) {
	term, _, _ := startPiped(t)
	program := term.program

	assert.NoError(t, term.Begin())
	assert.Same(t, program, term.program)
}
