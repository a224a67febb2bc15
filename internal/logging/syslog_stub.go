// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

//go:build windows || plan9

package logging

import (
	"io"

	"grimm.is/flywatch/internal/errors"
)

// NewSyslogWriter is unavailable on this platform.
func NewSyslogWriter(cfg SyslogConfig) (io.WriteCloser, error) {
	if cfg.Host == "" {
		return nil, errors.New(errors.KindValidation, "syslog host is required")
	}
	return nil, errors.New(errors.KindUnavailable, "syslog is not supported on this platform")
}
