// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dates provides calendar date and date range values with the
// date arithmetic needed to lay out and classify calendar grids.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate represents a calendar day as a year, month and day with
// no time of day or location. The zero value represents an unset date.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns the CalendarDate for the specified year, month
// and day. Values outside of their usual ranges are normalized, so that
// month 13 refers to January of the following year and day 0 refers to
// the last day of the previous month.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return DateOf(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the CalendarDate for t in t's location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: Month(m), Day: d}
}

// IsZero returns true if cd is the zero value, ie. unset.
func (cd CalendarDate) IsZero() bool {
	return cd == CalendarDate{}
}

// Time returns midnight UTC on cd.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week for cd.
func (cd CalendarDate) Weekday() time.Weekday {
	return cd.Time().Weekday()
}

// Compare returns -1, 0 or +1 depending on whether cd is before, the
// same as, or after d.
func (cd CalendarDate) Compare(d CalendarDate) int {
	switch {
	case cd.Year != d.Year:
		return cmpInt(cd.Year, d.Year)
	case cd.Month != d.Month:
		return cmpInt(int(cd.Month), int(d.Month))
	default:
		return cmpInt(cd.Day, d.Day)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Equal returns true if cd and d refer to the same calendar day.
func (cd CalendarDate) Equal(d CalendarDate) bool {
	return cd == d
}

// Before returns true if cd is strictly before d.
func (cd CalendarDate) Before(d CalendarDate) bool {
	return cd.Compare(d) < 0
}

// After returns true if cd is strictly after d.
func (cd CalendarDate) After(d CalendarDate) bool {
	return cd.Compare(d) > 0
}

// DaysSince returns the number of whole days from d to cd, it is
// negative if cd is before d.
func (cd CalendarDate) DaysSince(d CalendarDate) int {
	// Unix seconds rather than time.Duration, which saturates at ~292 years.
	return int((cd.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// AddDays returns the date n days after cd, n may be negative.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return NewCalendarDate(cd.Year, cd.Month, cd.Day+n)
}

// Tomorrow returns the date of the following day.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if cd.Day < DaysInMonth(cd.Year, cd.Month) {
		cd.Day++
		return cd
	}
	if cd.Month == 12 {
		return CalendarDate{Year: cd.Year + 1, Month: 1, Day: 1}
	}
	return CalendarDate{Year: cd.Year, Month: cd.Month + 1, Day: 1}
}

// Yesterday returns the date of the previous day.
func (cd CalendarDate) Yesterday() CalendarDate {
	if cd.Day > 1 {
		cd.Day--
		return cd
	}
	if cd.Month == 1 {
		return CalendarDate{Year: cd.Year - 1, Month: 12, Day: 31}
	}
	return CalendarDate{Year: cd.Year, Month: cd.Month - 1, Day: DaysInMonth(cd.Year, cd.Month-1)}
}

// FirstOfMonth returns the first day of cd's month.
func (cd CalendarDate) FirstOfMonth() CalendarDate {
	return CalendarDate{Year: cd.Year, Month: cd.Month, Day: 1}
}

// LastOfMonth returns the last day of cd's month.
func (cd CalendarDate) LastOfMonth() CalendarDate {
	return CalendarDate{Year: cd.Year, Month: cd.Month, Day: DaysInMonth(cd.Year, cd.Month)}
}

// SameMonth returns true if cd and d fall in the same month of the same year.
func (cd CalendarDate) SameMonth(d CalendarDate) bool {
	return cd.Year == d.Year && cd.Month == d.Month
}

// StartOfWeek returns the first day of the week containing cd for
// weeks that begin on weekStart.
func (cd CalendarDate) StartOfWeek(weekStart time.Weekday) CalendarDate {
	offset := (int(cd.Weekday()) - int(weekStart) + 7) % 7
	return cd.AddDays(-offset)
}

// EndOfWeek returns the last day of the week containing cd for weeks
// that begin on weekStart.
func (cd CalendarDate) EndOfWeek(weekStart time.Weekday) CalendarDate {
	return cd.StartOfWeek(weekStart).AddDays(6)
}

// Format formats cd using a time.Time layout.
func (cd CalendarDate) Format(layout string) string {
	return cd.Time().Format(layout)
}

func (cd CalendarDate) String() string {
	if cd.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	return []byte(cd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value
// results in the zero, ie. unset, CalendarDate.
func (cd *CalendarDate) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*cd = CalendarDate{}
		return nil
	}
	return cd.Parse(string(text))
}

const expectedCalendarDateFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

// Parse parses a date in formats '2006-01-02', '01/02/2006' or
// 'Jan-02-2006' with error checking for valid month and day.
func (cd *CalendarDate) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected %s", expectedCalendarDateFormats)
	}
	var (
		year, day int
		month     Month
		err       error
	)
	switch {
	case strings.Contains(val, "/"):
		year, month, day, err = parseParts(val, "/", 2, 0, ParseNumericMonth)
	case val[0] >= '0' && val[0] <= '9':
		year, month, day, err = parseParts(val, "-", 0, 1, ParseNumericMonth)
	default:
		year, month, day, err = parseParts(val, "-", 2, 0, ParseMonth)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s: %v", val, expectedCalendarDateFormats, err)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("invalid day for %v %v: %d", month, year, day)
	}
	*cd = CalendarDate{Year: year, Month: month, Day: day}
	return nil
}

// parseParts splits val into three parts using sep, the year and
// month are found at the specified indices and the day is the remaining
// index.
func parseParts(val, sep string, yearIdx, monthIdx int, monthParser func(string) (Month, error)) (int, Month, int, error) {
	parts := strings.Split(val, sep)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 parts separated by %q", sep)
	}
	dayIdx := 3 - yearIdx - monthIdx
	year, err := strconv.Atoi(parts[yearIdx])
	if err != nil || len(parts[yearIdx]) != 4 {
		return 0, 0, 0, fmt.Errorf("invalid year: %s", parts[yearIdx])
	}
	month, err := monthParser(parts[monthIdx])
	if err != nil {
		return 0, 0, 0, err
	}
	day, err := strconv.Atoi(parts[dayIdx])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid day: %s", parts[dayIdx])
	}
	return year, month, day, nil
}

// ParseCalendarDate is a convenience wrapper around CalendarDate.Parse.
func ParseCalendarDate(val string) (CalendarDate, error) {
	var cd CalendarDate
	err := cd.Parse(val)
	return cd, err
}
