package session

import (
	"log/slog"
	"net/netip"
)

// The methods below are the hooks for the transfer layer, which owns the peer
// collection and the progress of downloads.

// AddPeer registers a newly joined peer.
func (s *Session) AddPeer(p Peer) {
	s.peers = append(s.peers, p)
	slog.Info("Peer joined", "session", s.id, "addr", p.Addr, "status", p.Status)
}

// SetPeerStatus updates the status of the peer at addr. It reports whether
// such a peer exists.
func (s *Session) SetPeerStatus(addr netip.Addr, status PeerStatus) bool {
	for i := range s.peers {
		if s.peers[i].Addr == addr {
			s.peers[i].Status = status
			return true
		}
	}
	return false
}

// RemovePeer drops the peer at addr. It reports whether such a peer existed.
func (s *Session) RemovePeer(addr netip.Addr) bool {
	for i := range s.peers {
		if s.peers[i].Addr == addr {
			s.peers = append(s.peers[:i], s.peers[i+1:]...)
			slog.Info("Peer left", "session", s.id, "addr", addr)
			return true
		}
	}
	return false
}

// AddAvailable offers one more file for download.
func (s *Session) AddAvailable(f FileEntry) {
	s.available.Push(f)
}

// Complete moves the first downloading entry called name to the finished
// list. It reports whether such an entry was downloading.
func (s *Session) Complete(name string) bool {
	for i, f := range s.downloading {
		if f.Name == name {
			s.downloading = append(s.downloading[:i], s.downloading[i+1:]...)
			s.finished = append(s.finished, f)
			slog.Info("Download finished", "session", s.id, "file", name)
			return true
		}
	}
	return false
}
