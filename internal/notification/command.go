// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package notification

// Command is an operator request against the log, emitted by a rendering
// layer and applied with Log.Execute.
type Command interface {
	apply(*Log)
}

// ClearAllCommand empties the log. It carries no payload; there is no
// partial clear.
type ClearAllCommand struct{}

func (ClearAllCommand) apply(l *Log) { l.ClearAll() }
