// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloudeng.io/algo/container/bitmap"
	"cloudeng.io/logging"
	"cloudeng.io/rangecal/dates"
	"cloudeng.io/rangecal/grid"
	"cloudeng.io/rangecal/picker"
	"cloudeng.io/rangecal/selection"
	"gopkg.in/yaml.v3"
)

const (
	cellWidth   = 4
	panelWidth  = cellWidth * 7
	panelGap    = "   "
	rangeLayout = "06.01.02"
)

type renderer struct {
	out       io.Writer
	format    string
	weekStart time.Weekday
}

func (r *renderer) newSession(year, month int, st selection.State) *picker.Session {
	return picker.New(year, month, st, picker.WithWeekStart(r.weekStart))
}

func (r *renderer) render(ctx context.Context, s *picker.Session, history []grid.Event) error {
	panels := s.Panels(ctx)
	switch r.format {
	case "json":
		return logging.NewJSONFormatter(r.out, "", "  ").Format(newView(s.State(), panels, history))
	case "yaml":
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(newView(s.State(), panels, history)); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := io.WriteString(r.out, formatText(s.State(), panels, history))
	return err
}

type cellView struct {
	Date          dates.CalendarDate `json:"date" yaml:"date"`
	Day           int                `json:"day,omitempty" yaml:"day,omitempty"`
	Role          grid.Role          `json:"role,omitempty" yaml:"role,omitempty"`
	SecondaryRole grid.Role          `json:"secondary_role,omitempty" yaml:"secondary_role,omitempty"`
	InPrimary     bool               `json:"in_primary,omitempty" yaml:"in_primary,omitempty"`
	InSecondary   bool               `json:"in_secondary,omitempty" yaml:"in_secondary,omitempty"`
	Hovered       bool               `json:"hovered,omitempty" yaml:"hovered,omitempty"`
}

type panelView struct {
	Year     int        `json:"year" yaml:"year"`
	Month    string     `json:"month" yaml:"month"`
	Overlap  bool       `json:"overlap" yaml:"overlap"`
	Weekdays []string   `json:"weekdays" yaml:"weekdays,flow"`
	Weeks    [][]string `json:"weeks" yaml:"weeks,flow"`
	Cells    []cellView `json:"cells" yaml:"cells"`
}

type view struct {
	State   selection.State `json:"state" yaml:"state"`
	Panels  []panelView     `json:"panels" yaml:"panels"`
	History []string        `json:"history,omitempty" yaml:"history,omitempty"`
}

func newView(st selection.State, panels [2]grid.Calendar, history []grid.Event) view {
	v := view{State: st}
	for _, cal := range panels {
		pv := panelView{
			Year:     cal.Snapshot.Year,
			Month:    cal.Snapshot.Month.String(),
			Weekdays: grid.WeekdayLabels(cal.Snapshot.WeekStart, 2),
		}
		for _, week := range cal.Weeks() {
			days := make([]string, len(week))
			for i, c := range week {
				if c.InMonth {
					days[i] = fmt.Sprintf("%d", c.DayNumber())
				}
			}
			pv.Weeks = append(pv.Weeks, days)
		}
		for _, c := range cal.Cells {
			pv.Overlap = pv.Overlap || c.Overlap
			pv.Cells = append(pv.Cells, cellView{
				Date:          c.Date,
				Day:           c.DayNumber(),
				Role:          c.Role,
				SecondaryRole: c.SecondaryRole,
				InPrimary:     c.InPrimary,
				InSecondary:   c.InSecondary,
				Hovered:       c.Hovered,
			})
		}
		v.Panels = append(v.Panels, pv)
	}
	for _, ev := range history {
		v.History = append(v.History, ev.String())
	}
	return v
}

// runs returns the first and last grid positions of each run of
// consecutive set positions in bm, runs are split at week boundaries.
func runs(bm bitmap.T, size int) [][2]int {
	var out [][2]int
	for i := range bm.NextSet(0, size) {
		if n := len(out); n > 0 && out[n-1][1] == i-1 && i%7 != 0 {
			out[n-1][1] = i
			continue
		}
		out = append(out, [2]int{i, i})
	}
	return out
}

// leadMarkers returns the character to the left of each day number.
// Each run of days in a range is drawn as a continuous band: '[' for the
// primary range's start, '<' where a primary run continues from the
// previous week or month and '=' elsewhere within it. The secondary
// range uses '{', '(' and '~' and is overdrawn by the primary.
func leadMarkers(cal grid.Calendar) []byte {
	leads := []byte(strings.Repeat(" ", len(cal.Cells)))
	paint := func(in func(grid.Cell) bool, role func(grid.Cell) grid.Role, start, cont, inside byte) {
		bm := cal.Mask(in)
		for _, run := range runs(bm, len(cal.Cells)) {
			for i := run[0]; i <= run[1]; i++ {
				r := role(cal.Cells[i])
				switch {
				case r == grid.Start:
					leads[i] = start
				case i > run[0]:
					leads[i] = inside
				case r == grid.Inside || (i > 0 && bm.IsSet(i-1)):
					leads[i] = cont
				}
			}
		}
	}
	paint(func(c grid.Cell) bool { return c.InSecondary },
		func(c grid.Cell) grid.Role { return c.SecondaryRole }, '{', '(', '~')
	paint(func(c grid.Cell) bool { return c.InPrimary },
		func(c grid.Cell) grid.Role { return c.Role }, '[', '<', '=')
	return leads
}

// trailMarker returns the character to the right of a day number: ']'
// and '}' for the end of the primary and secondary ranges and '*' for
// the hover cursor.
func trailMarker(c grid.Cell) byte {
	switch {
	case c.Role == grid.End:
		return ']'
	case c.SecondaryRole == grid.End:
		return '}'
	case c.Hovered:
		return '*'
	}
	return ' '
}

func panelLines(cal grid.Calendar) []string {
	leads := leadMarkers(cal)
	lines := []string{fmt.Sprintf("%-*s", panelWidth, fmt.Sprintf("%v %v", cal.Snapshot.Month, cal.Snapshot.Year))}
	var sb strings.Builder
	for _, l := range grid.WeekdayLabels(cal.Snapshot.WeekStart, 2) {
		fmt.Fprintf(&sb, " %-2s ", l)
	}
	lines = append(lines, sb.String())
	for _, week := range cal.Weeks() {
		sb.Reset()
		for _, c := range week {
			day := "."
			if c.InMonth {
				day = fmt.Sprintf("%d", c.DayNumber())
			}
			fmt.Fprintf(&sb, "%c%2s%c", leads[c.Index], day, trailMarker(c))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func formatRange(dr dates.DateRange) string {
	if dr.IsEmpty() {
		return "-"
	}
	return dr.Format(rangeLayout)
}

// formatText renders the panels side by side followed by a summary of
// the selection state and any event history.
func formatText(st selection.State, panels [2]grid.Calendar, history []grid.Event) string {
	left, right := panelLines(panels[0]), panelLines(panels[1])
	blank := strings.Repeat(" ", panelWidth)
	var out strings.Builder
	for i := range max(len(left), len(right)) {
		l, r := blank, blank
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		out.WriteString(strings.TrimRight(l+panelGap+r, " "))
		out.WriteByte('\n')
	}
	fmt.Fprintf(&out, "\nmode: %v\n", st.Mode)
	fmt.Fprintf(&out, "primary: %v\n", formatRange(st.Primary))
	fmt.Fprintf(&out, "secondary: %v\n", formatRange(st.Secondary))
	if st.IsHovering() {
		fmt.Fprintf(&out, "hover: %v\n", st.Hover)
	}
	fmt.Fprintf(&out, "overlap: %v\n", grid.Overlap(st.Primary, st.Secondary))
	if len(history) > 0 {
		out.WriteString("history:\n")
		for _, ev := range history {
			fmt.Fprintf(&out, "  %v\n", ev)
		}
	}
	return out.String()
}
