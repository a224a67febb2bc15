// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

//go:build !windows && !plan9

package logging

import (
	"fmt"
	"io"
	"log/syslog"

	"grimm.is/flywatch/internal/errors"
)

// NewSyslogWriter dials the remote syslog collector described by cfg.
func NewSyslogWriter(cfg SyslogConfig) (io.WriteCloser, error) {
	if cfg.Host == "" {
		return nil, errors.New(errors.KindValidation, "syslog host is required")
	}
	cfg = cfg.withDefaults()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	prio := syslog.Priority(cfg.Facility<<3) | syslog.LOG_INFO
	w, err := syslog.Dial(cfg.Protocol, addr, prio, cfg.Tag)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindUnavailable, "dial syslog %s", addr)
	}
	return w, nil
}
