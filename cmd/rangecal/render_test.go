// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	"cloudeng.io/algo/container/bitmap"
	"cloudeng.io/rangecal/dates"
	"cloudeng.io/rangecal/selection"
	"gopkg.in/yaml.v3"
)

func july2024(t *testing.T) selection.State {
	t.Helper()
	primary, err := dates.ParseDateRange("2024-07-10:2024-07-16")
	if err != nil {
		t.Fatal(err)
	}
	return selection.State{Primary: primary}
}

func TestFormatText(t *testing.T) {
	ctx := context.Background()
	r := &renderer{format: "text"}
	s := r.newSession(2024, 7, july2024(t))
	out := formatText(s.State(), s.Panels(ctx), nil)
	lines := strings.Split(out, "\n")

	for i, want := range []string{
		"July 2024                      August 2024",
		" Su  Mo  Tu  We  Th  Fr  Sa     Su  Mo  Tu  We  Th  Fr  Sa",
		"  .   1   2   3   4   5   6      .   .   .   .   1   2   3",
		"  7   8   9 [10 =11 =12 =13      4   5   6   7   8   9  10",
		"<14 =15 =16] 17  18  19  20     11  12  13  14  15  16  17",
		" 21  22  23  24  25  26  27     18  19  20  21  22  23  24",
		" 28  29  30  31   .   .   .     25  26  27  28  29  30  31",
		"",
		"mode: primary-start",
		"primary: 24.07.10 ~ 24.07.16",
		"secondary: -",
		"overlap: false",
	} {
		if got := lines[i]; got != want {
			t.Errorf("line %v: got %q, want %q", i, got, want)
		}
	}
}

func TestFormatTextMarkers(t *testing.T) {
	ctx := context.Background()
	r := &renderer{format: "text", weekStart: time.Monday}
	st := july2024(t)
	st.Secondary, _ = dates.ParseDateRange("2024-07-02:2024-07-04")
	st.Hover = dates.CalendarDate{Year: 2024, Month: 7, Day: 25}
	st.Mode = selection.SecondaryEnd
	s := r.newSession(2024, 7, st)
	out := formatText(s.State(), s.Panels(ctx), nil)
	for _, want := range []string{
		" Mo  Tu  We  Th  Fr  Sa  Su     Mo  Tu  We  Th  Fr  Sa  Su",
		"  1 { 2 ~ 3 ~ 4}  5   6   7",
		" 22  23  24  25* 26  27  28",
		"mode: secondary-end",
		"secondary: 24.07.02 ~ 24.07.04",
		"hover: 2024-07-25",
		"overlap: true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("%q not found in:\n%s", want, out)
		}
	}
}

func TestRuns(t *testing.T) {
	bm := bitmap.New(35)
	for _, i := range []int{5, 6, 7, 8, 20, 34} {
		bm.Set(i)
	}
	if got, want := runs(bm, 35), [][2]int{{5, 6}, {7, 8}, {20, 20}, {34, 34}}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := runs(bitmap.New(35), 35); len(got) != 0 {
		t.Errorf("got %v, want no runs", got)
	}
}

func TestFormatTextContinuation(t *testing.T) {
	ctx := context.Background()
	r := &renderer{format: "text"}
	for _, tc := range []struct {
		primary string
		line    string
	}{
		// a range that starts before the grid continues into it.
		{"2024-06-25:2024-07-03",
			"< . = 1 = 2 = 3]  4   5   6      .   .   .   .   1   2   3"},
		// a lone end point is not a continuation.
		{":2024-07-05",
			"  .   1   2   3   4   5]  6      .   .   .   .   1   2   3"},
		// a range that spans a week boundary.
		{"2024-07-05:2024-07-08",
			"  .   1   2   3   4 [ 5 = 6      .   .   .   .   1   2   3"},
		{"2024-07-05:2024-07-08",
			"< 7 = 8]  9  10  11  12  13      4   5   6   7   8   9  10"},
	} {
		primary, err := dates.ParseDateRange(tc.primary)
		if err != nil {
			t.Fatal(err)
		}
		s := r.newSession(2024, 7, selection.State{Primary: primary})
		out := formatText(s.State(), s.Panels(ctx), nil)
		if !strings.Contains(out, tc.line+"\n") {
			t.Errorf("%v: %q not found in:\n%s", tc.primary, tc.line, out)
		}
	}
}

func TestRenderFormats(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	r := &renderer{out: out, format: "json"}
	s := r.newSession(2024, 7, july2024(t))
	if err := r.render(ctx, s, nil); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"primary": "2024-07-10:2024-07-16"`,
		`"mode": "primary-start"`,
		`"month": "July"`,
		`"month": "August"`,
		`"date": "2024-07-10"`,
		`"role": "start"`,
		`"role": "end"`,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("%q not found in:\n%s", want, out.String())
		}
	}

	out.Reset()
	r.format = "yaml"
	if err := r.render(ctx, s, nil); err != nil {
		t.Fatal(err)
	}
	var v struct {
		State  selection.State `yaml:"state"`
		Panels []struct {
			Year     int        `yaml:"year"`
			Month    string     `yaml:"month"`
			Weekdays []string   `yaml:"weekdays"`
			Weeks    [][]string `yaml:"weeks"`
		} `yaml:"panels"`
	}
	if err := yaml.Unmarshal(out.Bytes(), &v); err != nil {
		t.Fatalf("%v: %s", err, out.String())
	}
	if got, want := v.State, s.State(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got, want := len(v.Panels), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if v.Panels[0].Month != "July" || v.Panels[1].Month != "August" || v.Panels[1].Year != 2024 {
		t.Errorf("unexpected panels: %+v", v.Panels)
	}
	if got, want := strings.Join(v.Panels[0].Weekdays, ","), "Su,Mo,Tu,We,Th,Fr,Sa"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := strings.Join(v.Panels[0].Weeks[0], ","), ",1,2,3,4,5,6"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlags(t *testing.T) {
	now := time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC)
	fv := &showFlags{
		Primary: "2025-02-03:",
		Mode:    "primary_end",
	}
	year, month, st, err := parseShowFlags(fv, now)
	if err != nil {
		t.Fatal(err)
	}
	if year != 2025 || month != 2 {
		t.Errorf("got %v %v", year, month)
	}
	if got, want := st.Primary, (dates.DateRange{Start: dates.CalendarDate{Year: 2025, Month: 2, Day: 3}}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := st.Mode, selection.PrimaryEnd; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	fv = &showFlags{Primary: "2025-02-30:", Hover: "nonsense", Mode: "sideways"}
	_, _, _, err = parseShowFlags(fv, now)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"invalid day", "nonsense", "sideways"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("%q not found in %v", want, err)
		}
	}

	if _, err := newRenderer(nil, &CommonFlags{Format: "xml", WeekStart: "monday"}); err == nil || !strings.Contains(err.Error(), "xml") {
		t.Errorf("unexpected or missing error: %v", err)
	}
	r, err := newRenderer(nil, &CommonFlags{Format: "yaml", WeekStart: "mon"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r.weekStart, time.Monday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
