// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package grid

import (
	"iter"
	"time"

	"cloudeng.io/rangecal/dates"
)

// Option represents an option to Build and the enumeration functions.
type Option func(*options)

type options struct {
	weekStart time.Weekday
}

// WithWeekStart sets the day that calendar weeks start on, the default
// is time.Sunday.
func WithWeekStart(day time.Weekday) Option {
	return func(o *options) {
		o.weekStart = day
	}
}

func newOptions(opts []Option) options {
	o := options{weekStart: time.Sunday}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Bounds returns the first and last days of the specified month and the
// first and last days of the grid that covers it, namely the start of the
// week containing first and the end of the week containing last. Month is
// 1-based and is normalized, so that month 13 is January of the following
// year and month 0 is December of the previous year.
func Bounds(year, month int, opts ...Option) (first, last, start, end dates.CalendarDate) {
	o := newOptions(opts)
	return bounds(year, month, o.weekStart)
}

func bounds(year, month int, weekStart time.Weekday) (first, last, start, end dates.CalendarDate) {
	y, m := dates.NormalizeMonth(year, month)
	first = dates.CalendarDate{Year: y, Month: m, Day: 1}
	last = first.LastOfMonth()
	return first, last, first.StartOfWeek(weekStart), last.EndOfWeek(weekStart)
}

// Days returns an iterator over every date in the grid for the specified
// month, see Bounds. The number of dates yielded is always a multiple of 7.
func Days(year, month int, opts ...Option) iter.Seq[dates.CalendarDate] {
	_, _, start, end := Bounds(year, month, opts...)
	return func(yield func(dates.CalendarDate) bool) {
		for td := start; !td.After(end); td = td.Tomorrow() {
			if !yield(td) {
				return
			}
		}
	}
}

// Enumerate returns every date in the grid for the specified month.
func Enumerate(year, month int, opts ...Option) []dates.CalendarDate {
	_, _, start, end := Bounds(year, month, opts...)
	days := make([]dates.CalendarDate, 0, end.DaysSince(start)+1)
	for d := range Days(year, month, opts...) {
		days = append(days, d)
	}
	return days
}

// WeekdayLabels returns the names of the days of the week, in grid column
// order for weeks starting on weekStart, truncated to at most width
// characters. A width of zero returns the full names.
func WeekdayLabels(weekStart time.Weekday, width int) []string {
	labels := make([]string, 7)
	for i := range labels {
		name := time.Weekday((int(weekStart) + i) % 7).String()
		if width > 0 && len(name) > width {
			name = name[:width]
		}
		labels[i] = name
	}
	return labels
}
