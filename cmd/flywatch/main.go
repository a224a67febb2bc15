// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Command flywatch runs the traffic notification log: the ingest API the
// detection engine posts to, the notifications TUI, and optionally an SSH
// server offering the same TUI to remote operators.
//
//	flywatch [-config flywatch.hcl] [-headless] [-log-file path]
//	flywatch -remote http://host:8787
//	flywatch validate -config flywatch.hcl
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", "", "Path to HCL config file")
	headless := flag.Bool("headless", false, "Run without the TUI (API and SSH only)")
	remote := flag.String("remote", "", "Attach the TUI to a running flywatch API instead of starting one")
	insecure := flag.Bool("insecure", false, "Skip TLS verification for -remote")
	logFile := flag.String("log-file", "", "Write logs to this file (default flywatch.log while the TUI runs)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch subcmd := flag.Arg(0); subcmd {
	case "validate":
		err = runValidate(*configPath)
	case "", "run":
		if *remote != "" {
			err = runRemote(ctx, *remote, *insecure, *configPath, *logFile)
			break
		}
		err = run(ctx, options{
			configPath: *configPath,
			headless:   *headless,
			logFile:    *logFile,
		})
	default:
		err = fmt.Errorf("unknown command: %s", subcmd)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "flywatch: %v\n", err)
		os.Exit(1)
	}
}
