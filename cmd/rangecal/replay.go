// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/rangecal/dates"
	"cloudeng.io/rangecal/picker"
	"cloudeng.io/rangecal/selection"
)

// script is the yaml representation of a replay script, for example:
//
//	year: 2024
//	month: 7
//	state:
//	  primary: 2024-07-10:2024-07-16
//	  mode: primary-end
//	events:
//	  - action: enter
//	    date: 2024-07-20
//	  - action: click
//	    date: 2024-07-20
//	  - action: leave
//	  - action: mode
//	    mode: secondary-start
//	  - action: next
type script struct {
	Year   int             `yaml:"year"`
	Month  int             `yaml:"month"`
	State  selection.State `yaml:"state"`
	Events []scriptEvent   `yaml:"events"`
}

type scriptEvent struct {
	// Action is one of click, enter, leave, mode, next, prev,
	// next-year or prev-year.
	Action string             `yaml:"action"`
	Date   dates.CalendarDate `yaml:"date,omitempty"`
	Mode   selection.Mode     `yaml:"mode,omitempty"`
}

func (ev scriptEvent) String() string {
	switch {
	case !ev.Date.IsZero():
		return ev.Action + " " + ev.Date.String()
	case ev.Action == "mode":
		return ev.Action + " " + ev.Mode.String()
	}
	return ev.Action
}

func runReplay(ctx context.Context, r *renderer, filename string) error {
	var sc script
	if err := cmdyaml.ParseConfigFile(ctx, filename, &sc); err != nil {
		return err
	}
	s := r.newSession(sc.Year, sc.Month, sc.State)
	if err := replayEvents(ctx, s, sc.Events); err != nil {
		return err
	}
	return r.render(ctx, s, s.History())
}

// replayEvents applies each event in turn, pointer events are delivered
// via the hooks of the cells of a freshly built left hand panel.
func replayEvents(ctx context.Context, s *picker.Session, events []scriptEvent) error {
	var errs errors.M
	logger := ctxlog.Logger(ctx)
	for i, ev := range events {
		if err := replayEvent(ctx, s, ev); err != nil {
			errs.Append(fmt.Errorf("event %v: %v: %w", i, ev, err))
			continue
		}
		logger.Info("replayed", "event", ev.String(), "generation", s.Generation())
	}
	return errs.Err()
}

func replayEvent(ctx context.Context, s *picker.Session, ev scriptEvent) error {
	switch ev.Action {
	case "next":
		s.NextMonth()
		return nil
	case "prev":
		s.PrevMonth()
		return nil
	case "next-year":
		s.NextYear()
		return nil
	case "prev-year":
		s.PrevYear()
		return nil
	case "mode":
		s.SetMode(ev.Mode)
		return nil
	}
	cal := s.Panels(ctx)[0]
	date := ev.Date
	if ev.Action == "leave" && date.IsZero() {
		// Leave events need not name the day being left.
		date = s.State().Hover
		if date.IsZero() {
			date = cal.First
		}
	}
	if date.IsZero() {
		return fmt.Errorf("missing date")
	}
	cell, ok := cal.Find(date)
	if !ok {
		return fmt.Errorf("%v is not displayed in the active panel for %v %v", date, cal.Snapshot.Month, cal.Snapshot.Year)
	}
	var dispatched bool
	switch ev.Action {
	case "click":
		dispatched = cell.Click()
	case "enter":
		dispatched = cell.HoverEnter()
	case "leave":
		dispatched = cell.HoverLeave()
	default:
		return fmt.Errorf("unsupported action: %q", ev.Action)
	}
	if !dispatched {
		return fmt.Errorf("%v is outside of %v %v and cannot be hovered", date, cal.Snapshot.Month, cal.Snapshot.Year)
	}
	return nil
}
