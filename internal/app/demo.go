package app

import (
	"math/rand/v2"
	"net/netip"

	"github.com/rescp17/leightbox/internal/session"
)

const (
	demoFileCount    = 19
	demoPeerCount    = 4
	demoNameLength   = 8
	demoMaxFileSize  = 123456
	alphanumericRune = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var demoStatuses = []session.PeerStatus{session.Idle, session.Downloading, session.Disconnected}

// DemoFiles returns n random "<name>.jpeg" entries.
func DemoFiles(r *rand.Rand, n int) []session.FileEntry {
	files := make([]session.FileEntry, 0, n)
	for range n {
		name := make([]byte, demoNameLength)
		for i := range name {
			name[i] = alphanumericRune[r.IntN(len(alphanumericRune))]
		}
		files = append(files, session.NewFileEntry(string(name)+".jpeg", r.Uint64N(demoMaxFileSize)))
	}
	return files
}

// DemoPeers returns n peers with random addresses and statuses.
func DemoPeers(r *rand.Rand, n int) []session.Peer {
	peers := make([]session.Peer, 0, n)
	for range n {
		var ip [4]byte
		for i := range ip {
			ip[i] = byte(1 + r.IntN(254))
		}
		peers = append(peers, session.Peer{
			Addr:   netip.AddrFrom4(ip),
			Status: demoStatuses[r.IntN(len(demoStatuses))],
		})
	}
	return peers
}

func randOrDefault(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
