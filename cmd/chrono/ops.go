package main

import (
	"sort"
	"strings"

	"github.com/curtisnewbie/chrono/date"
	"github.com/curtisnewbie/chrono/util/errs"
	"github.com/spf13/cast"
)

type opFunc func(d date.Date, arg string) (date.Date, error)

// operations by lowercase name
var ops = map[string]opFunc{}

func init() {
	noArg := map[string]func(date.Date) date.Date{
		"nextday":          date.Date.NextDay,
		"previousday":      date.Date.PreviousDay,
		"tomorrow":         date.Date.Tomorrow,
		"yesterday":        date.Date.Yesterday,
		"nextweek":         date.Date.NextWeek,
		"previousweek":     date.Date.PreviousWeek,
		"nextmonth":        date.Date.NextMonth,
		"previousmonth":    date.Date.PreviousMonth,
		"nextyear":         date.Date.NextYear,
		"previousyear":     date.Date.PreviousYear,
		"settimeaszero":    date.Date.SetTimeAsZero,
		"startofday":       date.Date.StartOfDay,
		"endofday":         date.Date.EndOfDay,
		"firstdayofmonth":  date.Date.FirstDayOfMonth,
		"lastdayofmonth":   date.Date.LastDayOfMonth,
		"firstmonthofyear": date.Date.FirstMonthOfYear,
		"lastmonthofyear":  date.Date.LastMonthOfYear,
		"firstdayofyear":   date.Date.FirstDayOfYear,
		"lastdayofyear":    date.Date.LastDayOfYear,
	}
	for name, f := range noArg {
		name, f := name, f
		ops[name] = func(d date.Date, arg string) (date.Date, error) {
			if arg != "" {
				return d, errs.ErrIllegalArgument.WithInternalMsg("operation '%v' takes no argument, got '%v'", name, arg)
			}
			return f(d), nil
		}
	}

	intArg := map[string]func(date.Date, int) date.Date{
		"nextdays":       date.Date.NextDays,
		"previousdays":   date.Date.PreviousDays,
		"nextweeks":      date.Date.NextWeeks,
		"previousweeks":  date.Date.PreviousWeeks,
		"nextmonths":     date.Date.NextMonths,
		"previousmonths": date.Date.PreviousMonths,
		"nextyears":      date.Date.NextYears,
		"previousyears":  date.Date.PreviousYears,
		"year":           date.Date.WithYear,
		"month":          date.Date.WithMonth,
		"day":            date.Date.WithDay,
		"hour":           date.Date.WithHour,
		"minute":         date.Date.WithMinute,
		"second":         date.Date.WithSecond,
	}
	for name, f := range intArg {
		name, f := name, f
		ops[name] = func(d date.Date, arg string) (date.Date, error) {
			n, err := cast.ToIntE(strings.TrimSpace(arg))
			if err != nil || arg == "" {
				return d, errs.ErrIllegalArgument.WithInternalMsg("operation '%v' requires an integer, got '%v'", name, arg)
			}
			return f(d, n), nil
		}
	}

	weekdayArg := map[string]func(date.Date, date.Weekday) date.Date{
		"nearestpreviousday": date.Date.NearestPreviousDay,
		"nearestnextday":     date.Date.NearestNextDay,
	}
	for name, f := range weekdayArg {
		name, f := name, f
		ops[name] = func(d date.Date, arg string) (date.Date, error) {
			w, err := date.ParseWeekday(arg)
			if err != nil {
				return d, err
			}
			return f(d, w), nil
		}
	}

	ops["zone"] = func(d date.Date, arg string) (date.Date, error) {
		return d.InZone(arg)
	}
}

// Names of the supported operations, sorted.
func OpNames() []string {
	names := make([]string, 0, len(ops))
	for k := range ops {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Apply comma separated operations in order, e.g., "nearestPreviousDay:monday,nextDays:3,lastDayOfMonth".
//
// Names are case-insensitive, the argument follows the first colon.
func ApplyOps(d date.Date, chain string) (date.Date, error) {
	for _, op := range strings.Split(chain, ",") {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		name, arg, _ := strings.Cut(op, ":")
		f, ok := ops[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return d, errs.ErrIllegalArgument.WithInternalMsg("unknown operation '%v'", name)
		}
		var err error
		if d, err = f(d, strings.TrimSpace(arg)); err != nil {
			return d, errs.Wrapf(err, "failed to apply '%v'", op)
		}
	}
	return d, nil
}
