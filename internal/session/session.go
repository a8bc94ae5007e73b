// Package session holds the in-memory state of one run of the dashboard.
package session

import (
	"log/slog"
	"net/netip"

	"github.com/google/uuid"
	"github.com/rescp17/leightbox/internal/input"
	"github.com/rescp17/leightbox/pkg/selectable"
)

// DefaultTitle is shown in the title bar when no title is configured.
const DefaultTitle = "leightbox"

// ConnectionMode tells whether this side shares files or downloads them.
type ConnectionMode int

const (
	Unset ConnectionMode = iota
	Host
	Client
)

func (m ConnectionMode) String() string {
	switch m {
	case Host:
		return "Host"
	case Client:
		return "Client"
	default:
		return "Unset"
	}
}

// PeerStatus is the transfer state of a connected peer.
type PeerStatus int

const (
	Idle PeerStatus = iota
	Downloading
	Disconnected
)

func (s PeerStatus) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Downloading:
		return "Downloading"
	case Disconnected:
		return "Disconnected"
	default:
		return "Unknown"
	}
}

// Peer is a remote party connected to a host.
type Peer struct {
	Addr   netip.Addr
	Status PeerStatus
}

// HostIdentity is what a client needs to reach the host. It is only displayed.
type HostIdentity struct {
	Addr     netip.Addr
	Password string
}

// FileEntry is a file offered by the host.
type FileEntry struct {
	Name     string
	Size     uint64
	MimeType string
	claimed  bool
}

// NewFileEntry creates an unclaimed entry.
func NewFileEntry(name string, size uint64) FileEntry {
	return FileEntry{Name: name, Size: size}
}

// Claimed reports whether the entry has been picked for download.
func (f FileEntry) Claimed() bool {
	return f.claimed
}

// WithClaimed returns a copy of the entry marked as claimed.
func (f FileEntry) WithClaimed() FileEntry {
	f.claimed = true
	return f
}

// Config is the initial state handed over by the process entry point.
type Config struct {
	Title  string
	Mode   ConnectionMode
	Host   HostIdentity
	Files  []FileEntry
	Peers  []Peer
	KeyMap input.KeyMap
}

// Session is the complete state of one run. The connection mode is fixed at
// construction.
type Session struct {
	id          string
	title       string
	quit        bool
	mode        ConnectionMode
	host        HostIdentity
	peers       []Peer
	available   *selectable.List[FileEntry]
	downloading []FileEntry
	finished    []FileEntry
	keys        input.KeyMap
}

// New creates a session from the initial configuration.
func New(cfg Config) *Session {
	title := cfg.Title
	if title == "" {
		title = DefaultTitle
	}
	keys := cfg.KeyMap
	if keys.IsZero() {
		keys = input.DefaultKeyMap
	}
	s := &Session{
		id:        uuid.New().String(),
		title:     title,
		mode:      cfg.Mode,
		host:      cfg.Host,
		peers:     append([]Peer(nil), cfg.Peers...),
		available: selectable.New(cfg.Files),
		keys:      keys,
	}
	slog.Info("Session created", "session", s.id, "mode", s.mode, "files", len(cfg.Files), "peers", len(cfg.Peers))
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) Title() string {
	return s.title
}

func (s *Session) Mode() ConnectionMode {
	return s.mode
}

// ShouldQuit reports whether the user asked to leave. Once set it stays set.
func (s *Session) ShouldQuit() bool {
	return s.quit
}

func (s *Session) Host() HostIdentity {
	return s.host
}

func (s *Session) KeyMap() input.KeyMap {
	return s.keys
}

// Peers returns a snapshot of the connected peers.
func (s *Session) Peers() []Peer {
	return append([]Peer(nil), s.peers...)
}

func (s *Session) Downloading() []FileEntry {
	return append([]FileEntry(nil), s.downloading...)
}

func (s *Session) Finished() []FileEntry {
	return append([]FileEntry(nil), s.finished...)
}

// Available returns the entries offered for download and the cursor position,
// -1 when no entry is selected.
func (s *Session) Available() (entries []FileEntry, cursor int) {
	cursor = -1
	if c, ok := s.available.Cursor(); ok {
		cursor = c
	}
	return s.available.Items(), cursor
}

// OnTick is the periodic maintenance hook run by the control loop once per
// tick interval. Nothing needs periodic upkeep yet.
func (s *Session) OnTick() {
	slog.Debug("Tick", "session", s.id)
}
