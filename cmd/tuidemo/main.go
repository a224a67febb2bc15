// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Command tuidemo feeds synthetic notification events so the page can be
// exercised without a capture engine. By default it runs the TUI in-process;
// with -target it posts the events to a running flywatch API instead.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"grimm.is/flywatch/internal/config"
	"grimm.is/flywatch/internal/errors"
	"grimm.is/flywatch/internal/geo"
	"grimm.is/flywatch/internal/i18n"
	"grimm.is/flywatch/internal/logging"
	"grimm.is/flywatch/internal/notification"
	"grimm.is/flywatch/internal/tui"
)

func main() {
	target := flag.String("target", "", "Post events to this flywatch API instead of running the TUI")
	interval := flag.Duration("interval", 2*time.Second, "Time between synthetic events")
	lang := flag.String("lang", "en", "UI language")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	if *target != "" {
		err = post(ctx, strings.TrimRight(*target, "/"), *interval)
	} else {
		err = runLocal(ctx, *interval, *lang)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuidemo: %v\n", err)
		os.Exit(1)
	}
}

var hosts = []notification.HostSummary{
	{Domain: "fonts.gstatic.com", ASNName: "GOOGLE", Country: "US"},
	{Domain: "repubblica.it", ASNName: "Fastweb SpA", Country: "IT"},
	{Domain: "heise.de", ASNName: "Heise Medien", Country: "DE"},
	{Domain: "192.168.1.20", Country: geo.Unknown},
}

// synth returns one random event stamped with now.
func synth(r *rand.Rand, now time.Time) notification.Event {
	ts := now.Format("15:04:05")
	switch r.IntN(3) {
	case 0:
		return notification.PacketsThresholdExceeded{
			Threshold: 1000,
			Incoming:  1000 + r.Uint32N(5000),
			Outgoing:  r.Uint32N(3000),
			Timestamp: ts,
		}
	case 1:
		return notification.BytesThresholdExceeded{
			Threshold: 800000,
			Incoming:  800000 + r.Uint64N(50_000_000),
			Outgoing:  r.Uint64N(10_000_000),
			Timestamp: ts,
		}
	default:
		h := hosts[r.IntN(len(hosts))]
		h.Traffic = notification.DataInfoHost{
			IncomingPackets: r.Uint64N(10000),
			OutgoingPackets: r.Uint64N(10000),
			IncomingBytes:   r.Uint64N(1 << 30),
			OutgoingBytes:   r.Uint64N(1 << 28),
			IsLocal:         h.Country == geo.Unknown,
		}
		return notification.FavoriteTransmitted{Host: h, Timestamp: ts}
	}
}

func feed(ctx context.Context, interval time.Duration, emit func(notification.Event) error) error {
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if err := emit(synth(r, now)); err != nil {
				return err
			}
		}
	}
}

func runLocal(ctx context.Context, interval time.Duration, lang string) error {
	logging.SetDefault(logging.New(logging.Config{Level: logging.LevelError, Output: os.Stderr}))

	packets, bytesPerSec := uint32(1000), uint32(800000)
	store := config.NewStore(&config.NotificationsConfig{
		PacketsThreshold: &packets,
		BytesThreshold:   &bytesPerSec,
		NotifyOnFavorite: true,
	})
	log := notification.NewLog()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go feed(ctx, interval, func(ev notification.Event) error {
		log.Append(ev)
		return nil
	})

	backend := tui.NewLocalBackend(log, store, nil)
	p := tea.NewProgram(tui.NewModel(backend, i18n.MatchLanguage(lang)), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// post plays the detection engine against a running flywatch.
func post(ctx context.Context, target string, interval time.Duration) error {
	client := &http.Client{Timeout: 5 * time.Second}
	url := target + "/api/notifications"
	fmt.Printf("Posting synthetic events to %s every %s (Ctrl+C to stop)\n", url, interval)

	return feed(ctx, interval, func(ev notification.Event) error {
		body, err := notification.MarshalEvent(ev)
		if err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, errors.KindUnavailable, "post event")
		}
		resp.Body.Close()
		fmt.Printf("%s %s -> %s\n", ev.When(), ev.Kind(), resp.Status)
		return nil
	})
}
