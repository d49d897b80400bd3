// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// daysPerMonth is indexed by month, index 0 is unused.
var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var (
	monthNames   = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
	weekdayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
)

// matchPrefix returns the index of the first of names that has val, of
// at least 3 characters and in any case, as a prefix.
func matchPrefix(kind, val string, names []string) (int, error) {
	if len(val) >= 3 {
		lc := strings.ToLower(val)
		for i, n := range names {
			if strings.HasPrefix(n, lc) {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid %s: %q", kind, val)
}

// Month as an int, January is 1.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	i, err := matchPrefix("month", val, monthNames)
	if err != nil {
		return 0, err
	}
	return Month(i + 1), nil
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) (err error) {
	n, nerr := ParseNumericMonth(val)
	if nerr != nil {
		n, err = ParseMonth(val)
	}
	if err == nil {
		*m = n
	}
	return
}

// DaysInMonth returns the number of days in the given month for the given
// year, months outside of 1-12 are normalized as per NormalizeMonth.
func DaysInMonth(year int, month Month) int {
	year, month = NormalizeMonth(year, int(month))
	if month == 2 {
		return DaysInFeb(year)
	}
	return daysPerMonth[month]
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// NormalizeMonth returns the year and month that result from allowing
// month to overflow or underflow the range 1-12, so that month 13 of
// 2024 is January 2025 and month 0 of 2024 is December 2023.
func NormalizeMonth(year, month int) (int, Month) {
	m := month - 1
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	return year, Month(m + 1)
}

// ParseWeekday parses a weekday name of the form "Sun" to "Sat" or any
// longer prefix of "Sunday" to "Saturday" in either case, or a numeric
// value in the range 0-6 with 0 being Sunday.
func ParseWeekday(val string) (time.Weekday, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("invalid weekday: %d", n)
		}
		return time.Weekday(n), nil
	}
	i, err := matchPrefix("weekday", val, weekdayNames)
	return time.Weekday(i), err
}
