// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"grimm.is/flywatch/internal/logging"
)

// Capacity is how many events the log retains. Appending to a full log
// evicts the oldest entry, so Len never exceeds Capacity and the "only the
// last 30" notice shows exactly when the log is full.
const Capacity = 30

// Entry is a logged event plus the bookkeeping the log adds on arrival.
type Entry struct {
	ID       uuid.UUID `json:"id"`
	Event    Event     `json:"-"`
	Received time.Time `json:"received"`
}

// Observer is told about log mutations. Calls happen under the write lock,
// in mutation order, and must not call back into the log.
type Observer interface {
	EventAppended(kind Kind)
	EventsEvicted(n int)
	LogCleared(n int)
	Retained(n int)
}

// Log is the ordered, bounded collection of notification events.
//
// The detection engine appends, the operator clears; both are exclusive
// writers. Readers take a Snapshot, which is consistent for the whole
// render pass.
type Log struct {
	mu     sync.RWMutex
	ring   [Capacity]Entry
	head   int // index of the oldest entry
	count  int
	unread int

	observer Observer
	logger   *logging.Logger
	now      func() time.Time

	subsMu sync.Mutex
	subs   map[chan struct{}]struct{}
}

// Option configures a Log.
type Option func(*Log)

func WithObserver(o Observer) Option {
	return func(l *Log) { l.observer = o }
}

func WithLogger(logger *logging.Logger) Option {
	return func(l *Log) { l.logger = logger }
}

// WithClock overrides the arrival clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// NewLog returns an empty log.
func NewLog(opts ...Option) *Log {
	l := &Log{
		now:  time.Now,
		subs: make(map[chan struct{}]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logging.WithComponent("notification")
	}
	return l
}

// Append adds ev at the tail, evicting the oldest entry when full.
// A nil event is a programming error in the producer.
func (l *Log) Append(ev Event) Entry {
	if ev == nil {
		panic("notification: append of nil event")
	}

	entry := Entry{ID: uuid.New(), Event: ev, Received: l.now()}

	l.mu.Lock()
	evicted := 0
	if l.count == Capacity {
		l.head = (l.head + 1) % Capacity
		l.count--
		evicted = 1
	}
	l.ring[(l.head+l.count)%Capacity] = entry
	l.count++
	l.unread++
	retained := l.count
	if l.observer != nil {
		l.observer.EventAppended(ev.Kind())
		if evicted > 0 {
			l.observer.EventsEvicted(evicted)
		}
		l.observer.Retained(retained)
	}
	l.mu.Unlock()

	l.logger.Debug("event appended", "kind", ev.Kind(), "id", entry.ID, "retained", retained)
	l.broadcast()
	return entry
}

// ClearAll empties the log and returns how many entries were dropped.
// Clearing an empty log is a no-op.
func (l *Log) ClearAll() int {
	l.mu.Lock()
	n := l.count
	l.ring = [Capacity]Entry{}
	l.head, l.count, l.unread = 0, 0, 0
	if n > 0 && l.observer != nil {
		l.observer.LogCleared(n)
		l.observer.Retained(0)
	}
	l.mu.Unlock()

	if n == 0 {
		return 0
	}
	l.logger.Info("notifications cleared", "count", n)
	l.broadcast()
	return n
}

// Execute applies an operator command.
func (l *Log) Execute(cmd Command) {
	cmd.apply(l)
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.count
}

func (l *Log) IsEmpty() bool { return l.Len() == 0 }

// AtOrOverCap reports whether the log holds Capacity entries, meaning older
// events may have been dropped.
func (l *Log) AtOrOverCap() bool { return l.Len() >= Capacity }

// Events returns the retained events in arrival order.
func (l *Log) Events() []Event { return l.Snapshot().Events() }

// Unread counts events appended since the operator last looked.
func (l *Log) Unread() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.unread
}

// MarkRead resets the unread counter.
func (l *Log) MarkRead() {
	l.mu.Lock()
	changed := l.unread != 0
	l.unread = 0
	l.mu.Unlock()
	if changed {
		l.broadcast()
	}
}

// Snapshot copies the log under a single read lock.
func (l *Log) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]Entry, l.count)
	for i := range l.count {
		entries[i] = l.ring[(l.head+i)%Capacity]
	}
	return Snapshot{entries: entries, unread: l.unread}
}

// Subscribe returns a channel that receives a value after every change.
// Bursts coalesce into one pending signal. Call cancel to unsubscribe.
func (l *Log) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	l.subsMu.Lock()
	l.subs[ch] = struct{}{}
	l.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			l.subsMu.Lock()
			delete(l.subs, ch)
			l.subsMu.Unlock()
		})
	}
}

func (l *Log) broadcast() {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()
	for ch := range l.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Snapshot is an immutable view of the log taken at one instant. Len,
// IsEmpty, AtOrOverCap and Entries always agree with each other.
type Snapshot struct {
	entries []Entry
	unread  int
}

func (s Snapshot) Len() int          { return len(s.entries) }
func (s Snapshot) IsEmpty() bool     { return len(s.entries) == 0 }
func (s Snapshot) AtOrOverCap() bool { return len(s.entries) >= Capacity }
func (s Snapshot) Unread() int       { return s.unread }

// Entries returns the entries oldest first. The slice is the caller's.
func (s Snapshot) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Events returns the events oldest first.
func (s Snapshot) Events() []Event {
	out := make([]Event, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Event
	}
	return out
}
