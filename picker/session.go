// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package picker provides a host for the calendar grid: a Session owns the
// selection state and the displayed month, builds the pair of month panels
// that a dual range date picker displays and applies the events delivered
// by their cells.
package picker

import (
	"context"
	"time"

	"cloudeng.io/algo/container/circular"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/rangecal/dates"
	"cloudeng.io/rangecal/grid"
	"cloudeng.io/rangecal/selection"
)

var (
	// ErrStaleEvent is returned by Dispatch for events generated by a
	// build that predates the most recent change of the ranges, the mode
	// or the displayed month.
	ErrStaleEvent = errors.New("event from a stale calendar build")
	// ErrUnknownEvent is returned by Dispatch for unrecognised event kinds.
	ErrUnknownEvent = errors.New("unknown event kind")
)

// DefaultHistorySize is the default number of applied events retained
// by a Session.
const DefaultHistorySize = 64

// Option represents an option to New.
type Option func(*options)

type options struct {
	weekStart   time.Weekday
	historySize int
}

// WithWeekStart sets the day that weeks start on in the panels.
func WithWeekStart(day time.Weekday) Option {
	return func(o *options) {
		o.weekStart = day
	}
}

// WithHistorySize sets the number of applied events retained, a value
// of zero or less disables the history.
func WithHistorySize(n int) Option {
	return func(o *options) {
		o.historySize = n
	}
}

// Session holds the state of a dual month, dual range date picker. It is
// intended to be driven by a single event loop and is not safe for
// concurrent use.
type Session struct {
	opts       options
	year       int
	month      dates.Month
	state      selection.State
	generation uint64
	history    *circular.Buffer[grid.Event]
}

// New returns a Session that displays the specified month, normalized as
// per dates.NormalizeMonth, and the specified month that follows it.
func New(year, month int, state selection.State, opts ...Option) *Session {
	s := &Session{
		opts: options{weekStart: time.Sunday, historySize: DefaultHistorySize},
	}
	for _, fn := range opts {
		fn(&s.opts)
	}
	s.year, s.month = dates.NormalizeMonth(year, month)
	s.state = state
	s.history = circular.NewBuffer[grid.Event](max(s.opts.historySize, 1))
	return s
}

// State returns the current selection state.
func (s *Session) State() selection.State {
	return s.state
}

// Month returns the year and month of the left hand panel.
func (s *Session) Month() (int, dates.Month) {
	return s.year, s.month
}

// Generation returns the current generation. It changes whenever the
// ranges, the mode or the displayed month change, that is, whenever a
// click on a previously built cell could be interpreted differently.
// Moving the hover cursor leaves it unchanged so that the leave and
// enter events a pointer move generates are both applied to the same
// build.
func (s *Session) Generation() uint64 {
	return s.generation
}

func (s *Session) replace(st selection.State) bool {
	if st == s.state {
		return false
	}
	if st.Primary != s.state.Primary || st.Secondary != s.state.Secondary || st.Mode != s.state.Mode {
		s.generation++
	}
	s.state = st
	return true
}

// SetState replaces the selection state.
func (s *Session) SetState(st selection.State) {
	s.replace(st)
}

// SetMode changes the selection mode.
func (s *Session) SetMode(m selection.Mode) {
	s.replace(s.state.WithMode(m))
}

func (s *Session) navigate(years, months int) {
	s.year, s.month = dates.NormalizeMonth(s.year+years, int(s.month)+months)
	s.generation++
}

// NextMonth advances the displayed months by one.
func (s *Session) NextMonth() { s.navigate(0, 1) }

// PrevMonth moves the displayed months back by one.
func (s *Session) PrevMonth() { s.navigate(0, -1) }

// NextYear advances the displayed months by a year.
func (s *Session) NextYear() { s.navigate(1, 0) }

// PrevYear moves the displayed months back by a year.
func (s *Session) PrevYear() { s.navigate(-1, 0) }

func (s *Session) input(month int, handlers grid.Handlers) grid.Input {
	return grid.Input{
		Year:       s.year,
		Month:      month,
		Primary:    s.state.Primary,
		Secondary:  s.state.Secondary,
		Hover:      s.state.Hover,
		Mode:       s.state.Mode,
		Generation: s.generation,
		Handlers:   handlers,
	}
}

// Panels returns the calendars for the current month and the month that
// follows it. The cells of the first panel dispatch their events to the
// session, those of the second are inert. Errors returned by Dispatch
// when the hooks are invoked are logged to the context's logger.
func (s *Session) Panels(ctx context.Context) [2]grid.Calendar {
	live := grid.Dispatch(func(ev grid.Event) {
		if err := s.Dispatch(ctx, ev); err != nil {
			ctxlog.Logger(ctx).Warn("event ignored", "event", ev.Kind.String(), "date", ev.Date.String(), "error", err)
		}
	})
	wo := grid.WithWeekStart(s.opts.weekStart)
	return [2]grid.Calendar{
		grid.Build(s.input(int(s.month), live), wo),
		grid.Build(s.input(int(s.month)+1, grid.Handlers{}), wo),
	}
}

// Dispatch applies ev to the session's state: clicks update the ranges as
// per selection.State.Click and hover events move or clear the hover
// cursor. Events from builds of an earlier generation are rejected with
// ErrStaleEvent.
func (s *Session) Dispatch(ctx context.Context, ev grid.Event) error {
	logger := ctxlog.Logger(ctx)
	if ev.Snapshot == nil || ev.Snapshot.Generation != s.generation {
		logger.Debug("stale event", "event", ev.Kind.String(), "date", ev.Date.String(), "generation", s.generation)
		return ErrStaleEvent
	}
	var next selection.State
	switch ev.Kind {
	case grid.Click:
		next = s.state.Click(ev.Date)
	case grid.HoverEnter:
		next = s.state.HoverEnter(ev.Date)
	case grid.HoverLeave:
		next = s.state.HoverLeave()
	default:
		return ErrUnknownEvent
	}
	changed := s.replace(next)
	s.record(ev)
	logger.Debug("event applied", "event", ev.Kind.String(), "date", ev.Date.String(),
		"changed", changed, "mode", s.state.Mode.String(),
		"primary", s.state.Primary.String(), "secondary", s.state.Secondary.String())
	return nil
}

func (s *Session) record(ev grid.Event) {
	if s.opts.historySize <= 0 {
		return
	}
	ev.Snapshot = nil
	s.history.Append([]grid.Event{ev})
	if over := s.history.Len() - s.opts.historySize; over > 0 {
		s.history.Head(over)
	}
}

// History returns the most recently applied events, oldest first.
func (s *Session) History() []grid.Event {
	events := s.history.Head(s.history.Len())
	if len(events) > 0 {
		s.history.Append(events)
	}
	return events
}
