// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package selection implements the state machine that determines how a
// click on a calendar date updates a primary and a secondary date range,
// together with the hover cursor used for live previews.
//
// State is a value type and every transition returns a new State, hosts
// replace their copy wholesale rather than patching individual fields.
package selection

import (
	"fmt"
	"strings"

	"cloudeng.io/rangecal/dates"
)

// Mode determines which endpoint of which range the next click assigns.
type Mode int

const (
	PrimaryStart Mode = iota
	PrimaryEnd
	SecondaryStart
	SecondaryEnd
)

var modeNames = []string{"primary-start", "primary-end", "secondary-start", "secondary-end"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses one of 'primary-start', 'primary-end', 'secondary-start'
// or 'secondary-end' in either case, underscores may be used instead of
// hyphens.
func ParseMode(val string) (Mode, error) {
	lc := strings.ReplaceAll(strings.ToLower(val), "_", "-")
	for i, n := range modeNames {
		if n == lc {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("invalid selection mode: %q, expected one of %s", val, strings.Join(modeNames, ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	n, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// State is the complete selection state owned by a host.
type State struct {
	Primary   dates.DateRange    `yaml:"primary" json:"primary"`
	Secondary dates.DateRange    `yaml:"secondary" json:"secondary"`
	Hover     dates.CalendarDate `yaml:"hover,omitempty" json:"hover"`
	Mode      Mode               `yaml:"mode" json:"mode"`
}

// Click returns the state that results from clicking on date d:
//
//	PrimaryStart:   primary start = d, mode advances to PrimaryEnd
//	PrimaryEnd:     primary end = d, mode is unchanged
//	SecondaryStart: secondary start = d, mode is unchanged
//	SecondaryEnd:   secondary end = d, mode is unchanged
//
// Endpoints are never validated or reordered so a click may leave a
// range inverted.
func (s State) Click(d dates.CalendarDate) State {
	switch s.Mode {
	case PrimaryStart:
		s.Primary = s.Primary.WithStart(d)
		s.Mode = PrimaryEnd
	case PrimaryEnd:
		s.Primary = s.Primary.WithEnd(d)
	case SecondaryStart:
		s.Secondary = s.Secondary.WithStart(d)
	case SecondaryEnd:
		s.Secondary = s.Secondary.WithEnd(d)
	}
	return s
}

// HoverEnter returns the state with the hover cursor set to d.
func (s State) HoverEnter(d dates.CalendarDate) State {
	s.Hover = d
	return s
}

// HoverLeave returns the state with the hover cursor cleared. It is a
// no-op if no cursor is set.
func (s State) HoverLeave() State {
	if s.Hover.IsZero() {
		return s
	}
	s.Hover = dates.CalendarDate{}
	return s
}

// IsHovering returns true if the hover cursor is set.
func (s State) IsHovering() bool {
	return !s.Hover.IsZero()
}

// WithMode returns the state with its mode set to m.
func (s State) WithMode(m Mode) State {
	s.Mode = m
	return s
}
