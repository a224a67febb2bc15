// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package ssh serves the notifications TUI to remote operators over SSH.
package ssh

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"golang.org/x/text/language"

	"grimm.is/flywatch/internal/config"
	"grimm.is/flywatch/internal/errors"
	"grimm.is/flywatch/internal/i18n"
	fwlog "grimm.is/flywatch/internal/logging"
	"grimm.is/flywatch/internal/metrics"
	"grimm.is/flywatch/internal/tui"
)

// Server wraps the Wish SSH server
type Server struct {
	srv      *ssh.Server
	backend  tui.Backend
	lang     language.Tag
	metrics  *metrics.Metrics
	logger   *fwlog.Logger
	addr     string
	shutdown atomic.Bool

	activeSessions   atomic.Int32
	totalConnections atomic.Uint64
}

// NewServer creates a new SSH server. Every session gets its own TUI model
// on backend; lang is used when the client does not send LANG.
func NewServer(cfg *config.SSHConfig, backend tui.Backend, lang language.Tag, m *metrics.Metrics) (*Server, error) {
	if cfg == nil {
		return nil, errors.New(errors.KindValidation, "ssh configuration is nil")
	}
	if backend == nil {
		return nil, errors.New(errors.KindValidation, "ssh server needs a backend")
	}

	srv := &Server{
		backend: backend,
		lang:    lang,
		metrics: m,
		logger:  fwlog.WithComponent("ssh"),
		addr:    cfg.Addr(),
	}

	opts := []ssh.Option{
		wish.WithAddress(srv.addr),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithMiddleware(
			bm.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(newAdapter(srv.logger)),
			srv.measureMiddleware(),
		),
	}
	if cfg.AuthorizedKeys != "" {
		opts = append(opts, wish.WithAuthorizedKeys(cfg.AuthorizedKeys))
	}

	ws, err := wish.NewServer(opts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "create ssh server")
	}
	srv.srv = ws
	return srv, nil
}

// Addr is the listen address; after Start it carries the bound port.
func (s *Server) Addr() string { return s.addr }

// ActiveSessions is the number of sessions currently attached.
func (s *Server) ActiveSessions() int { return int(s.activeSessions.Load()) }

// Start binds the listen address and serves in the background until Stop
// or ctx is done. Bind failures are returned.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Attr(errors.Wrap(err, errors.KindUnavailable, "ssh listen"), "addr", s.addr)
	}
	s.addr = ln.Addr().String()
	s.logger.Info("starting SSH server", "addr", s.addr)

	go func() {
		if err := s.srv.Serve(ln); err != nil && err != ssh.ErrServerClosed && !s.shutdown.Load() {
			s.logger.Error("SSH server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		_ = s.Stop(context.Background())
	}()
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	if s.shutdown.Swap(true) {
		return nil
	}
	s.logger.Info("stopping SSH server")
	return s.srv.Shutdown(ctx)
}

func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	lang := SessionLanguage(sess.Environ(), s.lang)
	s.logger.Debug("session attached", "user", sess.User(), "remote", sess.RemoteAddr().String(), "lang", lang)
	return tui.NewModel(s.backend, lang), []tea.ProgramOption{tea.WithAltScreen()}
}

// SessionLanguage picks the UI language from the client's LC_ALL, LC_MESSAGES
// or LANG, in that order.
func SessionLanguage(environ []string, fallback language.Tag) language.Tag {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := vars[name]
		// it_IT.UTF-8@euro -> it-IT
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if tag, err := language.Parse(strings.ReplaceAll(v, "_", "-")); err == nil {
			return i18n.NewPrinter(tag).Language()
		}
	}
	return i18n.NewPrinter(fallback).Language()
}

func (s *Server) measureMiddleware() wish.Middleware {
	return func(sh ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			s.activeSessions.Add(1)
			s.totalConnections.Add(1)
			if s.metrics != nil {
				s.metrics.SessionOpened()
			}

			defer func() {
				s.activeSessions.Add(-1)
				if s.metrics != nil {
					s.metrics.SessionClosed()
				}
			}()

			sh(sess)
		}
	}
}

// adapter routes wish's request log into the component logger.
type adapter struct {
	logger *fwlog.Logger
}

func newAdapter(logger *fwlog.Logger) *adapter {
	return &adapter{logger: logger}
}

func (a *adapter) Printf(format string, args ...interface{}) {
	a.logger.Debug(fmt.Sprintf(format, args...))
}
