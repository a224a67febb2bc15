// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package ssh

import (
	"context"
	"net"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/charmbracelet/ssh"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"grimm.is/flywatch/internal/config"
	"grimm.is/flywatch/internal/errors"
	"grimm.is/flywatch/internal/metrics"
	"grimm.is/flywatch/internal/notification"
	"grimm.is/flywatch/internal/tui"
)

func TestSessionLanguage(t *testing.T) {
	cases := []struct {
		name    string
		environ []string
		want    language.Tag
	}{
		{"no env", nil, language.English},
		{"lang", []string{"LANG=it_IT.UTF-8"}, language.Italian},
		{"modifier", []string{"LANG=de_DE@euro"}, language.German},
		{"lc_all wins", []string{"LANG=it_IT.UTF-8", "LC_ALL=de_AT.UTF-8"}, language.German},
		{"posix skipped", []string{"LC_ALL=C", "LANG=it_CH.UTF-8"}, language.Italian},
		{"unsupported", []string{"LANG=ja_JP.UTF-8"}, language.English},
		{"garbage", []string{"LANG", "LANG=???"}, language.English},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SessionLanguage(tc.environ, language.English))
		})
	}

	assert.Equal(t, language.Italian, SessionLanguage(nil, language.Italian))
}

func testBackend() tui.Backend {
	return tui.NewLocalBackend(notification.NewLog(), config.NewStore(nil), nil)
}

func TestNewServer_Validation(t *testing.T) {
	_, err := NewServer(nil, testBackend(), language.English, nil)
	require.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))

	_, err = NewServer(&config.SSHConfig{}, nil, language.English, nil)
	require.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))
}

func TestNewServer(t *testing.T) {
	cfg := &config.SSHConfig{
		Enabled:       true,
		ListenAddress: "127.0.0.1",
		Port:          2424,
		HostKeyPath:   filepath.Join(t.TempDir(), "host_ed25519"),
	}
	srv, err := NewServer(cfg, testBackend(), language.English, nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:2424", srv.Addr())
	assert.Zero(t, srv.ActiveSessions())
}

func listenerConfig(t *testing.T, port int) *config.SSHConfig {
	return &config.SSHConfig{
		Enabled:       true,
		ListenAddress: "127.0.0.1",
		Port:          port,
		HostKeyPath:   filepath.Join(t.TempDir(), "host_ed25519"),
	}
}

func TestServer_StartPortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	srv, err := NewServer(listenerConfig(t, port), testBackend(), language.English, nil)
	require.NoError(t, err)

	err = srv.Start(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.KindUnavailable, errors.GetKind(err))
	assert.Equal(t, "127.0.0.1:"+strconv.Itoa(port), errors.GetAttributes(err)["addr"])
}

func TestServer_StartAndStop(t *testing.T) {
	free, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := free.Addr().(*net.TCPAddr).Port
	require.NoError(t, free.Close())

	srv, err := NewServer(listenerConfig(t, port), testBackend(), language.English, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, srv.Start(ctx))
	assert.Equal(t, "127.0.0.1:"+strconv.Itoa(port), srv.Addr())

	require.NoError(t, srv.Stop(context.Background()))
	require.NoError(t, srv.Stop(context.Background()), "second Stop is a no-op")
}

func TestMeasureMiddleware(t *testing.T) {
	m := metrics.NewMetrics()
	srv := &Server{metrics: m}

	var during int
	h := srv.measureMiddleware()(func(ssh.Session) {
		during = srv.ActiveSessions()
	})
	h(nil)

	assert.Equal(t, 1, during)
	assert.Zero(t, srv.ActiveSessions())
	assert.Equal(t, uint64(1), srv.totalConnections.Load())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SSHSessionsTotal))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.SSHSessions))
}
