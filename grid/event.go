// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"cloudeng.io/rangecal/dates"
)

// EventKind identifies the interaction that generated an Event.
type EventKind int

const (
	Click EventKind = iota
	HoverEnter
	HoverLeave
)

func (k EventKind) String() string {
	switch k {
	case Click:
		return "click"
	case HoverEnter:
		return "hover-enter"
	case HoverLeave:
		return "hover-leave"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is delivered to a host's handlers when a cell's hook is invoked.
// Snapshot refers to the immutable inputs of the build that produced the
// cell so that a host can tell which state the event was generated
// against.
type Event struct {
	Kind     EventKind          `json:"kind" yaml:"kind"`
	Date     dates.CalendarDate `json:"date" yaml:"date"`
	Snapshot *Snapshot          `json:"-" yaml:"-"`
}

func (e Event) String() string {
	return e.Kind.String() + " " + e.Date.String()
}

// HandlerFunc is called to deliver an Event.
type HandlerFunc func(Event)

// Handlers are supplied to Build and are invoked by the hooks of the
// cells it returns, never by Build itself. A nil handler is inert.
type Handlers struct {
	OnClick      HandlerFunc
	OnHoverEnter HandlerFunc
	OnHoverLeave HandlerFunc
}

// Dispatch returns Handlers that deliver every kind of event to fn.
func Dispatch(fn HandlerFunc) Handlers {
	return Handlers{OnClick: fn, OnHoverEnter: fn, OnHoverLeave: fn}
}

func (h Handlers) handler(kind EventKind) HandlerFunc {
	switch kind {
	case Click:
		return h.OnClick
	case HoverEnter:
		return h.OnHoverEnter
	case HoverLeave:
		return h.OnHoverLeave
	}
	return nil
}
