package session

import (
	"log/slog"

	"github.com/rescp17/leightbox/internal/input"
)

// Handle applies a single input event to the session. It never fails: keys
// without a binding, a missing cursor and already claimed entries are all
// ignored.
func (s *Session) Handle(ev input.Event) {
	keyEv, ok := ev.(input.KeyEvent)
	if !ok {
		return
	}

	switch code := keyEv.Code; {
	case input.Matches(code, s.keys.Quit):
		s.quit = true
	case input.Matches(code, s.keys.Down):
		s.available.Next()
	case input.Matches(code, s.keys.Up):
		s.available.Prev()
	case input.Matches(code, s.keys.Claim):
		s.claimSelected()
	}
}

func (s *Session) claimSelected() {
	cursor, ok := s.available.Cursor()
	if !ok {
		return
	}
	entry, claimed, err := s.available.Claim(cursor)
	if err != nil {
		// The cursor always addresses a valid entry, so this is a bug.
		slog.Error("Cursor out of sync with available files", "session", s.id, "index", cursor, "error", err)
		return
	}
	if !claimed {
		return
	}
	s.downloading = append(s.downloading, entry)
	slog.Info("File queued for download", "session", s.id, "file", entry.Name, "size", entry.Size)
}
