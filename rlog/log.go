// SPDX-License-Identifier: Unlicense OR MIT

// Package rlog implements Vidra's leveled event logger: a builder-style
// Event API over a subscribable log feed, adapted from SentryShot's
// pkg/log (itself inspired by zerolog). Unlike that original, this
// logger has no database sink: a render is a one-shot batch job, not a
// long-lived service, so persistence is the caller's concern.
package rlog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Level names an event's severity.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Entry is one emitted log record.
type Entry struct {
	Time  time.Time
	Level Level
	Src   string
	Scene string
	Layer string
	Frame int
	HasFrame bool
	Msg   string
}

// Event accumulates a single log record's fields before it is sent.
type Event struct {
	entry  Entry
	logger *Logger
}

// Src sets the event's subsystem source.
func (e *Event) Src(source string) *Event {
	e.entry.Src = source
	return e
}

// Scene sets the event's scene id.
func (e *Event) Scene(id string) *Event {
	e.entry.Scene = id
	return e
}

// Layer sets the event's layer id.
func (e *Event) Layer(id string) *Event {
	e.entry.Layer = id
	return e
}

// Frame sets the event's frame index.
func (e *Event) Frame(index int) *Event {
	e.entry.Frame = index
	e.entry.HasFrame = true
	return e
}

// Msg sends the event with msg as its message.
func (e *Event) Msg(msg string) {
	e.entry.Msg = msg
	e.logger.emit(e.entry)
}

// Msgf sends the event with a formatted message.
func (e *Event) Msgf(format string, v ...interface{}) {
	e.Msg(fmt.Sprintf(format, v...))
}

// Feed is a read-only subscription to a Logger's entries.
type Feed <-chan Entry
type entryFeed chan Entry

// CancelFunc ends a feed subscription.
type CancelFunc func()

// Logger fans out leveled events to every current subscriber and, by
// default, to stderr.
type Logger struct {
	mu    sync.Mutex
	subs  map[entryFeed]struct{}
	level Level
}

// NewLogger returns a Logger at the given minimum level, already
// printing to stderr.
func NewLogger(level Level) *Logger {
	return &Logger{subs: make(map[entryFeed]struct{}), level: level}
}

func (l *Logger) emit(e Entry) {
	if e.Level < l.level {
		return
	}
	e.Time = timeNow()
	printEntry(e)

	l.mu.Lock()
	defer l.mu.Unlock()
	for ch := range l.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// timeNow is a seam so tests can stub out wall-clock reads; it is
// never called from inside the deterministic render path.
var timeNow = time.Now

// Subscribe returns a feed of every subsequent entry and a function to
// end the subscription.
func (l *Logger) Subscribe() (Feed, CancelFunc) {
	ch := make(entryFeed, 64)
	l.mu.Lock()
	l.subs[ch] = struct{}{}
	l.mu.Unlock()

	cancel := func() {
		l.mu.Lock()
		delete(l.subs, ch)
		l.mu.Unlock()
		close(ch)
	}
	return (chan Entry)(ch), cancel
}

// Debug starts a debug-level event.
func (l *Logger) Debug() *Event { return &Event{entry: Entry{Level: LevelDebug}, logger: l} }

// Info starts an info-level event.
func (l *Logger) Info() *Event { return &Event{entry: Entry{Level: LevelInfo}, logger: l} }

// Warn starts a warning-level event.
func (l *Logger) Warn() *Event { return &Event{entry: Entry{Level: LevelWarning}, logger: l} }

// Error starts an error-level event.
func (l *Logger) Error() *Event { return &Event{entry: Entry{Level: LevelError}, logger: l} }

func printEntry(e Entry) {
	var b strings.Builder
	b.WriteString("[" + e.Level.String() + "] ")
	if e.Src != "" {
		b.WriteString(e.Src + ": ")
	}
	if e.Scene != "" {
		b.WriteString("scene=" + e.Scene + " ")
	}
	if e.Layer != "" {
		b.WriteString("layer=" + e.Layer + " ")
	}
	if e.HasFrame {
		b.WriteString(fmt.Sprintf("frame=%d ", e.Frame))
	}
	b.WriteString(e.Msg)
	fmt.Fprintln(os.Stderr, b.String())
}
