// Package render projects a session into a backend independent layout.
package render

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/rescp17/leightbox/internal/session"
)

// Pane titles and peer table headers.
const (
	AvailableTitle   = "Available"
	DownloadingTitle = "Downloading"
	FinishedTitle    = "Finished"
	PeersTitle       = "Connected"
)

var PeerHeader = []string{"IP", "Status"}

// Layout is everything a surface needs to draw one frame. It shares no memory
// with the session it was projected from.
type Layout struct {
	Title string
	Mode  session.ConnectionMode
	// Panes is set in client mode: available, downloading, finished.
	Panes []Pane
	// Table is set in host mode.
	Table *Table
	Info  string
	Help  []key.Binding
}

// Pane is a titled list of files. Cursor is -1 when no row is highlighted.
type Pane struct {
	Title  string
	Rows   []Row
	Cursor int
}

// Row is one file of a pane.
type Row struct {
	Name    string
	Detail  string
	Claimed bool
}

// Table is the peer table shown to a host.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Project builds the layout for the current state of s. It only reads s.
func Project(s *session.Session) Layout {
	l := Layout{
		Title: s.Title(),
		Mode:  s.Mode(),
		Help:  s.KeyMap().ShortHelp(),
	}

	switch s.Mode() {
	case session.Client:
		available, cursor := s.Available()
		l.Panes = []Pane{
			filePane(AvailableTitle, available, cursor, true),
			filePane(DownloadingTitle, s.Downloading(), -1, false),
			filePane(FinishedTitle, s.Finished(), -1, false),
		}
	case session.Host:
		l.Table = peerTable(s.Peers())
	case session.Unset:
	}

	l.Info = InfoText(s)
	return l
}

// InfoText is the content of the info bar.
func InfoText(s *session.Session) string {
	switch s.Mode() {
	case session.Host:
		host := s.Host()
		return fmt.Sprintf("IP: %s  Password: %s", host.Addr, host.Password)
	case session.Client:
		available, _ := s.Available()
		return fmt.Sprintf("Available: %d  Downloading: %d  Finished: %d",
			len(available), len(s.Downloading()), len(s.Finished()))
	default:
		return ""
	}
}

// filePane lists files as name plus size. Only the available pane flags
// claimed rows; everything downloading or finished has been claimed.
func filePane(title string, files []session.FileEntry, cursor int, markClaimed bool) Pane {
	rows := make([]Row, 0, len(files))
	for _, f := range files {
		rows = append(rows, Row{
			Name:    f.Name,
			Detail:  fmt.Sprintf("%d bytes", f.Size),
			Claimed: markClaimed && f.Claimed(),
		})
	}
	return Pane{Title: title, Rows: rows, Cursor: cursor}
}

func peerTable(peers []session.Peer) *Table {
	rows := make([][]string, 0, len(peers))
	for _, p := range peers {
		rows = append(rows, []string{p.Addr.String(), p.Status.String()})
	}
	return &Table{
		Title:  PeersTitle,
		Header: append([]string(nil), PeerHeader...),
		Rows:   rows,
	}
}
