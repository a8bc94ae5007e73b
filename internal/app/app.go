// Package app builds the session for each leightbox command and runs it on
// the terminal.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/netip"

	"github.com/google/uuid"

	"github.com/rescp17/leightbox/internal/config"
	"github.com/rescp17/leightbox/internal/loop"
	"github.com/rescp17/leightbox/internal/session"
	"github.com/rescp17/leightbox/pkg/fileInfo"
	"github.com/rescp17/leightbox/pkg/ui"
)

const passwordLength = 8

var (
	ErrInvalidTarget = errors.New("target must be an IPv4 address")
	ErrNoPassword    = errors.New("password is required")
)

// ClientOptions describes the host a client downloads from.
type ClientOptions struct {
	Title    string
	Target   string
	Password string
	// Demo fills the catalogue with random files.
	Demo bool
	Rand *rand.Rand
}

// HostOptions describes the folder a host shares.
type HostOptions struct {
	Title    string
	Folder   string
	Password string
	// Demo adds random connected peers.
	Demo bool
	Rand *rand.Rand
}

// NewClientSession creates the session of a client connecting to opts.Target.
func NewClientSession(opts ClientOptions) (*session.Session, error) {
	addr, err := parseIPv4(opts.Target)
	if err != nil {
		return nil, err
	}
	if opts.Password == "" {
		return nil, ErrNoPassword
	}

	var files []session.FileEntry
	if opts.Demo {
		files = DemoFiles(randOrDefault(opts.Rand), demoFileCount)
	}

	return session.New(session.Config{
		Title: opts.Title,
		Mode:  session.Client,
		Host:  session.HostIdentity{Addr: addr, Password: opts.Password},
		Files: files,
	}), nil
}

// NewHostSession creates the session of a host sharing opts.Folder from this
// machine. A password is generated when none is given.
func NewHostSession(opts HostOptions) (*session.Session, error) {
	nodes, err := fileInfo.ScanFolder(opts.Folder)
	if err != nil {
		return nil, fmt.Errorf("scan shared folder: %w", err)
	}
	files := make([]session.FileEntry, 0, len(nodes))
	for _, n := range nodes {
		entry := session.NewFileEntry(n.Name, n.Size)
		entry.MimeType = n.MimeType
		files = append(files, entry)
	}

	password := opts.Password
	if password == "" {
		password = GeneratePassword()
	}

	var peers []session.Peer
	if opts.Demo {
		peers = DemoPeers(randOrDefault(opts.Rand), demoPeerCount)
	}

	return session.New(session.Config{
		Title: opts.Title,
		Mode:  session.Host,
		Host:  session.HostIdentity{Addr: LocalIPv4(), Password: password},
		Files: files,
		Peers: peers,
	}), nil
}

// Run shows the session on the terminal until the user quits.
func Run(cfg *config.Config, sess *session.Session) error {
	term := ui.NewTerminal()
	slog.Info("Starting dashboard", "session", sess.ID(), "mode", sess.Mode(), "tick_rate", cfg.TickRate)
	if err := loop.Start(term, term, sess, loop.WithTickRate(cfg.TickRate)); err != nil {
		slog.Error("Dashboard stopped", "session", sess.ID(), "error", err)
		return err
	}
	slog.Info("Dashboard closed", "session", sess.ID())
	return nil
}

// GeneratePassword returns a short random password for a host.
func GeneratePassword() string {
	return uuid.NewString()[:passwordLength]
}

// LocalIPv4 returns the first non-loopback IPv4 address of this machine, or
// the loopback address when there is none.
func LocalIPv4() netip.Addr {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		slog.Warn("Cannot list interface addresses", "error", err)
		return netip.AddrFrom4([4]byte{127, 0, 0, 1})
	}
	for _, a := range addrs {
		ipNet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		addr, ok := netip.AddrFromSlice(ipNet.IP)
		if !ok {
			continue
		}
		addr = addr.Unmap()
		if addr.Is4() && !addr.IsLoopback() {
			return addr
		}
	}
	return netip.AddrFrom4([4]byte{127, 0, 0, 1})
}

func parseIPv4(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}
	addr = addr.Unmap()
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}
	return addr, nil
}
