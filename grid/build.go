// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package grid derives the cells of a month calendar that displays two
// independent date ranges and a hover cursor. Build enumerates every day
// of the weeks that cover the requested month, classifies each one
// against the primary and secondary ranges and returns a flat list of
// cell descriptions for a rendering layer to paint.
//
// Build is a pure function of its Input. The hooks attached to each cell
// deliver Events to the Input's Handlers when invoked by the rendering
// layer; each Event refers to the Snapshot of the inputs that the cell
// was built from rather than to any live state.
//
//	cal := grid.Build(grid.Input{
//		Year: 2024, Month: 7,
//		Primary: dates.NewDateRange(start, end),
//		Handlers: grid.Dispatch(host.handle),
//	})
//	for _, week := range cal.Weeks() {
//		...
//	}
package grid

import (
	"iter"
	"time"

	"cloudeng.io/algo/container/bitmap"
	"cloudeng.io/rangecal/dates"
	"cloudeng.io/rangecal/selection"
)

// Input represents the inputs to Build.
type Input struct {
	// Year and Month (1-based) of the calendar, Month is normalized
	// as per Bounds.
	Year, Month int

	Primary   dates.DateRange
	Secondary dates.DateRange

	// Hover is the date under the pointer, the zero value if none.
	Hover dates.CalendarDate

	// Mode is passed through to the Snapshot for the benefit of
	// the host and renderers, it does not affect classification.
	Mode selection.Mode

	// Generation is an opaque value chosen by the host and copied
	// to the Snapshot, it may be used to detect events from stale builds.
	Generation uint64

	Handlers Handlers
}

// Snapshot is the immutable record of the inputs used for a single Build.
type Snapshot struct {
	Year       int
	Month      dates.Month
	Primary    dates.DateRange
	Secondary  dates.DateRange
	Hover      dates.CalendarDate
	Mode       selection.Mode
	WeekStart  time.Weekday
	Generation uint64
}

type binding struct {
	snapshot *Snapshot
	handlers Handlers
}

// Cell describes a single day in the grid.
type Cell struct {
	Index, Row, Column int

	Date dates.CalendarDate
	// InMonth is false for filler days from the adjacent months.
	InMonth bool

	// Role is the boundary role of Date within the primary range and
	// SecondaryRole within the secondary range.
	Role          Role
	SecondaryRole Role

	InPrimary   bool
	InSecondary bool

	// Overlap is set when both ranges are complete, see Overlap.
	Overlap bool

	// Hovered is set when Date is the hover cursor and InMonth is true.
	Hovered bool

	b *binding
}

// DayNumber returns the day of the month to display, or zero for
// filler days.
func (c Cell) DayNumber() int {
	if !c.InMonth {
		return 0
	}
	return c.Date.Day
}

// Event returns the Event that the hook of the specified kind would
// deliver and whether it would be delivered at all. Hover events are
// never delivered for filler days, clicks always are.
func (c Cell) Event(kind EventKind) (Event, bool) {
	if kind != Click && !c.InMonth {
		return Event{}, false
	}
	ev := Event{Kind: kind, Date: c.Date}
	if c.b != nil {
		ev.Snapshot = c.b.snapshot
	}
	return ev, true
}

func (c Cell) dispatch(kind EventKind) bool {
	ev, ok := c.Event(kind)
	if !ok || c.b == nil {
		return false
	}
	fn := c.b.handlers.handler(kind)
	if fn == nil {
		return false
	}
	fn(ev)
	return true
}

// Click invokes the click handler for this cell's date, including for
// filler days. It returns true if a handler was called.
func (c Cell) Click() bool {
	return c.dispatch(Click)
}

// HoverEnter invokes the hover-enter handler unless the cell is a
// filler day. It returns true if a handler was called.
func (c Cell) HoverEnter() bool {
	return c.dispatch(HoverEnter)
}

// HoverLeave invokes the hover-leave handler unless the cell is a
// filler day. It returns true if a handler was called.
func (c Cell) HoverLeave() bool {
	return c.dispatch(HoverLeave)
}

// Calendar is the result of Build.
type Calendar struct {
	Snapshot *Snapshot
	// First and Last are the first and last days of the month.
	First, Last dates.CalendarDate
	Cells       []Cell
}

// Rows returns the number of weeks in the grid.
func (c Calendar) Rows() int {
	return len(c.Cells) / 7
}

// Weeks returns an iterator over the rows of the grid.
func (c Calendar) Weeks() iter.Seq2[int, []Cell] {
	return func(yield func(int, []Cell) bool) {
		for row := range c.Rows() {
			if !yield(row, c.Cells[row*7:row*7+7]) {
				return
			}
		}
	}
}

// Find returns the cell for d, if the grid contains it.
func (c Calendar) Find(d dates.CalendarDate) (Cell, bool) {
	if len(c.Cells) == 0 {
		return Cell{}, false
	}
	i := d.DaysSince(c.Cells[0].Date)
	if i < 0 || i >= len(c.Cells) {
		return Cell{}, false
	}
	return c.Cells[i], true
}

// Mask returns a bitmap with the bit for each cell index set for which
// pred returns true.
func (c Calendar) Mask(pred func(Cell) bool) bitmap.T {
	bm := bitmap.New(len(c.Cells))
	for i, cell := range c.Cells {
		if pred(cell) {
			bm.Set(i)
		}
	}
	return bm
}

// Build returns the Calendar for the supplied input. It never invokes
// any of the input's handlers.
func Build(in Input, opts ...Option) Calendar {
	o := newOptions(opts)
	first, last, start, end := bounds(in.Year, in.Month, o.weekStart)
	snapshot := &Snapshot{
		Year:       first.Year,
		Month:      first.Month,
		Primary:    in.Primary,
		Secondary:  in.Secondary,
		Hover:      in.Hover,
		Mode:       in.Mode,
		WeekStart:  o.weekStart,
		Generation: in.Generation,
	}
	b := &binding{snapshot: snapshot, handlers: in.Handlers}
	overlap := Overlap(in.Primary, in.Secondary)
	cells := make([]Cell, 0, end.DaysSince(start)+1)
	i := 0
	for td := start; !td.After(end); td = td.Tomorrow() {
		inMonth := td.SameMonth(first)
		role := Classify(td, in.Primary)
		secondary := Classify(td, in.Secondary)
		cells = append(cells, Cell{
			Index:         i,
			Row:           i / 7,
			Column:        i % 7,
			Date:          td,
			InMonth:       inMonth,
			Role:          role,
			SecondaryRole: secondary,
			InPrimary:     role.InRange(),
			InSecondary:   secondary.InRange(),
			Overlap:       overlap,
			Hovered:       inMonth && !in.Hover.IsZero() && td == in.Hover,
			b:             b,
		})
		i++
	}
	return Calendar{
		Snapshot: snapshot,
		First:    first,
		Last:     last,
		Cells:    cells,
	}
}
