// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package grid_test

import (
	"testing"

	"cloudeng.io/rangecal/grid"
)

type recorder struct {
	events []grid.Event
}

func (r *recorder) record(ev grid.Event) {
	r.events = append(r.events, ev)
}

func TestHooks(t *testing.T) {
	rec := &recorder{}
	cal := grid.Build(grid.Input{
		Year:       2024,
		Month:      7,
		Generation: 42,
		Handlers:   grid.Dispatch(rec.record),
	})
	if len(rec.events) != 0 {
		t.Fatalf("handlers must not be called by Build: %v", rec.events)
	}

	filler, _ := cal.Find(nd(2024, 6, 30))
	inMonth, _ := cal.Find(nd(2024, 7, 4))

	if !filler.Click() {
		t.Errorf("clicks on filler days must be dispatched")
	}
	if filler.HoverEnter() || filler.HoverLeave() {
		t.Errorf("hover on filler days must not be dispatched")
	}
	if !inMonth.HoverEnter() || !inMonth.Click() || !inMonth.HoverLeave() {
		t.Errorf("in month hooks must be dispatched")
	}

	want := []struct {
		kind grid.EventKind
		date string
	}{
		{grid.Click, "2024-06-30"},
		{grid.HoverEnter, "2024-07-04"},
		{grid.Click, "2024-07-04"},
		{grid.HoverLeave, "2024-07-04"},
	}
	if got := len(rec.events); got != len(want) {
		t.Fatalf("got %v, want %v", rec.events, want)
	}
	for i, ev := range rec.events {
		if ev.Kind != want[i].kind || ev.Date.String() != want[i].date {
			t.Errorf("%v: got %v, want %v %v", i, ev, want[i].kind, want[i].date)
		}
		if ev.Snapshot != cal.Snapshot || ev.Snapshot.Generation != 42 {
			t.Errorf("%v: event does not refer to the build's snapshot", i)
		}
	}
}

func TestHookHandlersSeparate(t *testing.T) {
	var clicks, enters, leaves int
	cal := grid.Build(grid.Input{
		Year:  2024,
		Month: 7,
		Handlers: grid.Handlers{
			OnClick:      func(grid.Event) { clicks++ },
			OnHoverEnter: func(grid.Event) { enters++ },
			OnHoverLeave: func(grid.Event) { leaves++ },
		},
	})
	for _, c := range cal.Cells {
		c.Click()
		c.HoverEnter()
		c.HoverLeave()
	}
	if clicks != 35 || enters != 31 || leaves != 31 {
		t.Errorf("got %v %v %v, want 35 31 31", clicks, enters, leaves)
	}
}

func TestInertHandlers(t *testing.T) {
	cal := grid.Build(grid.Input{Year: 2024, Month: 8})
	cell, _ := cal.Find(nd(2024, 8, 1))
	if cell.Click() || cell.HoverEnter() || cell.HoverLeave() {
		t.Errorf("nil handlers must be inert")
	}
	ev, ok := cell.Event(grid.Click)
	if !ok || ev.Kind != grid.Click || ev.Date != nd(2024, 8, 1) || ev.Snapshot != cal.Snapshot {
		t.Errorf("unexpected event: %v %v", ok, ev)
	}
	filler, _ := cal.Find(nd(2024, 7, 31))
	if _, ok := filler.Event(grid.HoverEnter); ok {
		t.Errorf("filler days have no hover events")
	}
	var zero grid.Cell
	if zero.Click() {
		t.Errorf("zero cell must be inert")
	}
}
