// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"iter"
	"strings"
)

// DateRange represents a range of dates, inclusive of Start and End.
// Either endpoint may be unset (the zero CalendarDate). A range with only
// a Start is half-open and a range with neither contributes nothing.
// The endpoints are never reordered, a range whose Start is after its End
// is inverted and is left as such.
type DateRange struct {
	Start CalendarDate `yaml:"start,omitempty" json:"start,omitempty"`
	End   CalendarDate `yaml:"end,omitempty" json:"end,omitempty"`
}

// NewDateRange returns a DateRange with the specified endpoints as is.
func NewDateRange(start, end CalendarDate) DateRange {
	return DateRange{Start: start, End: end}
}

// HasStart returns true if the start of the range is set.
func (dr DateRange) HasStart() bool {
	return !dr.Start.IsZero()
}

// HasEnd returns true if the end of the range is set.
func (dr DateRange) HasEnd() bool {
	return !dr.End.IsZero()
}

// IsComplete returns true if both endpoints are set.
func (dr DateRange) IsComplete() bool {
	return dr.HasStart() && dr.HasEnd()
}

// IsEmpty returns true if neither endpoint is set.
func (dr DateRange) IsEmpty() bool {
	return !dr.HasStart() && !dr.HasEnd()
}

// IsInverted returns true if both endpoints are set and Start is after End.
func (dr DateRange) IsInverted() bool {
	return dr.IsComplete() && dr.Start.After(dr.End)
}

// WithStart returns a copy of dr with its start set to d.
func (dr DateRange) WithStart(d CalendarDate) DateRange {
	dr.Start = d
	return dr
}

// WithEnd returns a copy of dr with its end set to d.
func (dr DateRange) WithEnd(d CalendarDate) DateRange {
	dr.End = d
	return dr
}

// Contains returns true if the range is complete and d lies within it,
// inclusive of both endpoints. An inverted range contains nothing.
func (dr DateRange) Contains(d CalendarDate) bool {
	if !dr.IsComplete() {
		return false
	}
	return !d.Before(dr.Start) && !d.After(dr.End)
}

// Days returns the number of days in a complete range, inclusive of
// both endpoints, or zero for incomplete or inverted ranges.
func (dr DateRange) Days() int {
	if !dr.IsComplete() || dr.IsInverted() {
		return 0
	}
	return dr.End.DaysSince(dr.Start) + 1
}

// Dates returns an iterator that yields each CalendarDate in a complete
// range. Nothing is yielded for incomplete or inverted ranges.
func (dr DateRange) Dates() iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		if !dr.IsComplete() {
			return
		}
		for td := dr.Start; !td.After(dr.End); td = td.Tomorrow() {
			if !yield(td) {
				return
			}
		}
	}
}

// Format formats the range as '<start> ~ <end>' using the supplied
// time.Time layout for each endpoint, unset endpoints are left blank.
func (dr DateRange) Format(layout string) string {
	var from, to string
	if dr.HasStart() {
		from = dr.Start.Format(layout)
	}
	if dr.HasEnd() {
		to = dr.End.Format(layout)
	}
	return strings.TrimSpace(from + " ~ " + to)
}

func (dr DateRange) String() string {
	return dr.Start.String() + ":" + dr.End.String()
}

// MarshalText implements encoding.TextMarshaler.
func (dr DateRange) MarshalText() ([]byte, error) {
	return []byte(dr.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dr *DateRange) UnmarshalText(text []byte) error {
	return dr.Parse(string(text))
}

// Parse parses ranges in the format '<start>:<end>' where each of start
// and end is in one of the formats accepted by CalendarDate.Parse or is
// empty to leave that endpoint unset. An empty string results in an
// empty range. Inverted ranges are accepted as is.
func (dr *DateRange) Parse(val string) error {
	if len(val) == 0 {
		*dr = DateRange{}
		return nil
	}
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<start>:<end>'", val)
	}
	var start, end CalendarDate
	if err := start.UnmarshalText([]byte(parts[0])); err != nil {
		return fmt.Errorf("invalid start: %s: %v", parts[0], err)
	}
	if err := end.UnmarshalText([]byte(parts[1])); err != nil {
		return fmt.Errorf("invalid end: %s: %v", parts[1], err)
	}
	*dr = DateRange{Start: start, End: end}
	return nil
}

// ParseDateRange is a convenience wrapper around DateRange.Parse.
func ParseDateRange(val string) (DateRange, error) {
	var dr DateRange
	err := dr.Parse(val)
	return dr, err
}
