// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"cloudeng.io/rangecal/dates"
)

// Role is the boundary role of a date with respect to a DateRange.
type Role int

const (
	None Role = iota
	Start
	End
	Inside
)

func (r Role) String() string {
	switch r {
	case None:
		return "none"
	case Start:
		return "start"
	case End:
		return "end"
	case Inside:
		return "inside"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// InRange returns true for Start, End and Inside.
func (r Role) InRange() bool {
	return r != None
}

// Classify returns the role of d with respect to r:
//
//	Start  if d is r.Start
//	End    if d is r.End and not r.Start
//	Inside if r is complete and d lies strictly between r.Start and r.End
//	None   otherwise
//
// A range whose start and end coincide classifies that date as Start.
// Inverted ranges are not corrected and never yield Inside.
func Classify(d dates.CalendarDate, r dates.DateRange) Role {
	switch {
	case r.HasStart() && d == r.Start:
		return Start
	case r.HasEnd() && d == r.End:
		return End
	case r.IsComplete() && d.After(r.Start) && d.Before(r.End):
		return Inside
	}
	return None
}

// Overlap reports whether both ranges are complete. It does not compute
// the intersection of the two ranges, every cell in a grid built from two
// complete ranges carries the overlap flag.
func Overlap(primary, secondary dates.DateRange) bool {
	return primary.IsComplete() && secondary.IsComplete()
}
