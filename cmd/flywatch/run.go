// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package main

import (
	"context"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"grimm.is/flywatch/internal/api"
	"grimm.is/flywatch/internal/config"
	"grimm.is/flywatch/internal/errors"
	"grimm.is/flywatch/internal/geo"
	"grimm.is/flywatch/internal/i18n"
	"grimm.is/flywatch/internal/logging"
	"grimm.is/flywatch/internal/metrics"
	"grimm.is/flywatch/internal/notification"
	"grimm.is/flywatch/internal/ssh"
	"grimm.is/flywatch/internal/tui"
)

// defaultTUILogFile keeps log lines off the terminal the TUI draws on.
const defaultTUILogFile = "flywatch.log"

type options struct {
	configPath string
	headless   bool
	logFile    string
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// setupLogging installs the process logger. The returned func closes the
// log file, if one was opened.
func setupLogging(cfg *config.Config, logFile string, tuiActive bool) (*logging.Logger, func(), error) {
	lc := cfg.Logging.LoggerConfig()
	closer := func() {}

	if logFile == "" && tuiActive {
		logFile = defaultTUILogFile
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Attr(errors.Wrap(err, errors.KindUnavailable, "open log file"), "path", logFile)
		}
		lc.Output = f
		closer = func() { _ = f.Close() }
	}

	logger := logging.New(lc)
	logging.SetDefault(logger)
	return logger, closer, nil
}

func run(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogging(cfg, opts.logFile, !opts.headless)
	if err != nil {
		return err
	}
	defer closeLog()

	lang := i18n.MatchLanguage(cfg.Language)
	logger.Info("starting flywatch", "config", opts.configPath, "language", lang, "headless", opts.headless)

	m := metrics.NewMetrics()
	reg := metrics.NewRegistry(m)
	log := notification.NewLog(
		notification.WithObserver(m),
		notification.WithLogger(logger.WithComponent("notification")),
	)
	store := config.NewStore(cfg.Notifications)

	ctx, cancel := context.WithCancel(ctx)
	var (
		wg       sync.WaitGroup
		resolver *geo.Resolver
		// fatal holds the first error of a service that brought the
		// process down.
		fatal = make(chan error, 1)
	)
	defer func() {
		cancel()
		wg.Wait()
		if resolver != nil {
			_ = resolver.Close()
		}
	}()

	if cfg.API.Enabled {
		srvOpts := api.ServerOptions{
			Log:      log,
			Store:    store,
			Metrics:  m,
			Registry: reg,
			Logger:   logger.WithComponent("api"),
		}

		if cfg.GeoIP.CountryDB != "" || cfg.GeoIP.ASNDB != "" {
			resolver, err = geo.OpenResolver(cfg.GeoIP.CountryDB, cfg.GeoIP.ASNDB)
			if err != nil {
				return err
			}
			srvOpts.Locator = resolver
		}

		srv, err := api.NewServer(srvOpts)
		if err != nil {
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Start(ctx, cfg.API.Listen); err != nil {
				logger.Error("API server failed", "error", err)
				select {
				case fatal <- err:
				default:
				}
				cancel()
			}
		}()
	}

	if opts.configPath != "" {
		w := config.NewWatcher(opts.configPath, store, logger.WithComponent("config"))
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.Run(ctx); err != nil {
				logger.Warn("config watcher stopped", "error", err)
			}
		}()
	}

	backend := tui.NewLocalBackend(log, store, m)

	if cfg.SSH.Enabled {
		sshSrv, err := ssh.NewServer(cfg.SSH, backend, lang, m)
		if err != nil {
			return err
		}
		if err := sshSrv.Start(ctx); err != nil {
			return err
		}
	}

	if opts.headless {
		<-ctx.Done()
		logger.Info("shutting down")
		return failure(fatal)
	}

	p := tea.NewProgram(tui.NewModel(backend, lang), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	cancel()
	if err := failure(fatal); err != nil {
		return err
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, errors.KindInternal, "tui")
	}
	return nil
}

// failure returns the recorded service error, if any.
func failure(fatal <-chan error) error {
	select {
	case err := <-fatal:
		return err
	default:
		return nil
	}
}

// runRemote attaches the TUI to another flywatch process over its API.
func runRemote(ctx context.Context, baseURL string, insecure bool, configPath, logFile string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	_, closeLog, err := setupLogging(cfg, logFile, true)
	if err != nil {
		return err
	}
	defer closeLog()

	backend := tui.NewRemoteBackend(baseURL, insecure)
	p := tea.NewProgram(tui.NewModel(backend, i18n.MatchLanguage(cfg.Language)), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, errors.KindInternal, "tui")
	}
	return nil
}
