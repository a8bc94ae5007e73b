package app

import (
	"math/rand/v2"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rescp17/leightbox/internal/session"
	"github.com/rescp17/leightbox/internal/util"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewClientSession(t *testing.T) {
	sess, err := NewClientSession(ClientOptions{Title: "downloads", Target: "192.168.1.20", Password: "abcd123"})
	require.NoError(t, err)

	assert.Equal(t, session.Client, sess.Mode())
	assert.Equal(t, "downloads", sess.Title())
	assert.Equal(t, netip.MustParseAddr("192.168.1.20"), sess.Host().Addr)
	assert.Equal(t, "abcd123", sess.Host().Password)
	entries, cursor := sess.Available()
	assert.Empty(t, entries)
	assert.Equal(t, -1, cursor)
}

func TestNewClientSession_Demo(t *testing.T) {
	sess, err := NewClientSession(ClientOptions{Target: "127.0.0.1", Password: "pw", Demo: true, Rand: seeded()})
	require.NoError(t, err)

	entries, _ := sess.Available()
	assert.Len(t, entries, demoFileCount)
}

func TestNewClientSession_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		opts    ClientOptions
		wantErr error
	}{
		{"not an address", ClientOptions{Target: "fileserver", Password: "pw"}, ErrInvalidTarget},
		{"ipv6", ClientOptions{Target: "::1", Password: "pw"}, ErrInvalidTarget},
		{"empty target", ClientOptions{Password: "pw"}, ErrInvalidTarget},
		{"no password", ClientOptions{Target: "10.0.0.1"}, ErrNoPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClientSession(tt.opts)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseIPv4_AcceptsMapped(t *testing.T) {
	addr, err := parseIPv4("::ffff:10.1.2.3")

	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.1.2.3"), addr)
}

func TestNewHostSession(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bravo"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha!"), 0o644))

	sess, err := NewHostSession(HostOptions{Folder: dir, Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, session.Host, sess.Mode())
	assert.Equal(t, session.DefaultTitle, sess.Title())
	assert.Equal(t, "secret", sess.Host().Password)
	assert.True(t, sess.Host().Addr.Is4())
	assert.Empty(t, sess.Peers())

	entries, _ := sess.Available()
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name)
	assert.Equal(t, uint64(6), entries[0].Size)
	assert.True(t, strings.HasPrefix(entries[0].MimeType, "text/plain"))
}

func TestNewHostSession_GeneratesPassword(t *testing.T) {
	sess, err := NewHostSession(HostOptions{Folder: t.TempDir()})
	require.NoError(t, err)

	assert.Len(t, sess.Host().Password, passwordLength)
}

func TestNewHostSession_Demo(t *testing.T) {
	sess, err := NewHostSession(HostOptions{Folder: t.TempDir(), Demo: true, Rand: seeded()})
	require.NoError(t, err)

	assert.Len(t, sess.Peers(), demoPeerCount)
}

func TestNewHostSession_BadFolder(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := NewHostSession(HostOptions{Folder: file})
	assert.ErrorIs(t, err, util.ErrNotDirectory)

	_, err = NewHostSession(HostOptions{Folder: filepath.Join(dir, "missing")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDemoFiles(t *testing.T) {
	files := DemoFiles(seeded(), 50)

	require.Len(t, files, 50)
	for _, f := range files {
		assert.True(t, strings.HasSuffix(f.Name, ".jpeg"))
		assert.Len(t, f.Name, demoNameLength+len(".jpeg"))
		assert.Less(t, f.Size, uint64(demoMaxFileSize))
		assert.False(t, f.Claimed())
	}
	assert.Equal(t, files, DemoFiles(seeded(), 50), "same seed, same files")
}

func TestDemoPeers(t *testing.T) {
	peers := DemoPeers(seeded(), 30)

	require.Len(t, peers, 30)
	for _, p := range peers {
		assert.True(t, p.Addr.Is4())
		for _, octet := range p.Addr.As4() {
			assert.NotZero(t, octet)
			assert.NotEqual(t, byte(255), octet)
		}
		assert.Contains(t, demoStatuses, p.Status)
	}
}

func TestGeneratePassword(t *testing.T) {
	a, b := GeneratePassword(), GeneratePassword()

	assert.Len(t, a, passwordLength)
	assert.NotEqual(t, a, b)
}

func TestLocalIPv4(t *testing.T) {
	assert.True(t, LocalIPv4().Is4())
}
