// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import "grimm.is/flywatch/internal/logging"

// DebugLog writes a debug line tagged component=tui. The TUI owns the
// terminal, so the process logger should point at a file while it runs.
func DebugLog(msg string, args ...any) {
	logging.WithComponent("tui").Debug(msg, args...)
}
