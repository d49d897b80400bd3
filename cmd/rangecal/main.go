// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command rangecal displays the month panels of a dual range date picker
// and replays scripted pointer events against a picker session.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/rangecal/dates"
	"cloudeng.io/rangecal/selection"
)

const cmdSpec = `name: rangecal
summary: display and exercise dual range calendar grids
commands:
  - name: show
    summary: display the calendar panels for a month and a pair of date ranges
  - name: replay
    summary: replay a yaml script of pointer events against a picker session
      and display the resulting panels and event history
    arguments:
      - <script.yaml>
`

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Format    string `subcmd:"format,text,'output format: text, json or yaml'"`
	WeekStart string `subcmd:"week-start,sunday,'the first day of the week, as a name or 0-6'"`
}

type showFlags struct {
	CommonFlags
	Year      int    `subcmd:"year,0,'year to display, defaults to the current year'"`
	Month     int    `subcmd:"month,0,'month to display (1-12), defaults to the current month'"`
	Primary   string `subcmd:"primary,,'primary date range as <start>:<end>, either may be empty'"`
	Secondary string `subcmd:"secondary,,'secondary date range as <start>:<end>, either may be empty'"`
	Hover     string `subcmd:"hover,,'date under the pointer'"`
	Mode      string `subcmd:"mode,primary-start,'selection mode: primary-start, primary-end, secondary-start or secondary-end'"`
}

type replayFlags struct {
	CommonFlags
}

func main() {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("show").MustRunnerAndFlags(show, subcmd.MustRegisteredFlagSet(&showFlags{}))
	cmdSet.Set("replay").MustRunnerAndFlags(replay, subcmd.MustRegisteredFlagSet(&replayFlags{}))
	subcmd.Dispatch(context.Background(), cmdSet)
}

// withLogger returns a context carrying the logger configured by lf and
// a function to close it.
func withLogger(ctx context.Context, lf *cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func newRenderer(out io.Writer, cf *CommonFlags) (*renderer, error) {
	var errs errors.M
	r := &renderer{out: out, format: cf.Format}
	switch cf.Format {
	case "text", "json", "yaml":
	default:
		errs.Append(fmt.Errorf("unsupported output format: %q", cf.Format))
	}
	weekStart, err := dates.ParseWeekday(cf.WeekStart)
	errs.Append(err)
	r.weekStart = weekStart
	return r, errs.Err()
}

func parseShowFlags(fv *showFlags, now time.Time) (year, month int, st selection.State, err error) {
	var errs errors.M
	today := dates.DateOf(now)
	year, month = fv.Year, fv.Month
	if year == 0 {
		year = today.Year
	}
	if month == 0 {
		month = int(today.Month)
	}
	st.Primary, err = dates.ParseDateRange(fv.Primary)
	errs.Append(err)
	st.Secondary, err = dates.ParseDateRange(fv.Secondary)
	errs.Append(err)
	if len(fv.Hover) > 0 {
		st.Hover, err = dates.ParseCalendarDate(fv.Hover)
		errs.Append(err)
	}
	st.Mode, err = selection.ParseMode(fv.Mode)
	errs.Append(err)
	return year, month, st, errs.Err()
}

func show(ctx context.Context, values any, _ []string) error {
	fv := values.(*showFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	r, err := newRenderer(os.Stdout, &fv.CommonFlags)
	if err != nil {
		return err
	}
	year, month, st, err := parseShowFlags(fv, time.Now())
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("show", "year", year, "month", month, "primary", st.Primary.String(), "secondary", st.Secondary.String())
	return r.render(ctx, r.newSession(year, month, st), nil)
}

func replay(ctx context.Context, values any, args []string) error {
	fv := values.(*replayFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	r, err := newRenderer(os.Stdout, &fv.CommonFlags)
	if err != nil {
		return err
	}
	return runReplay(ctx, r, args[0])
}
