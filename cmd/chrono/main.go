package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/curtisnewbie/chrono/config"
	"github.com/curtisnewbie/chrono/date"
	"github.com/curtisnewbie/chrono/encoding/json"
	"github.com/curtisnewbie/chrono/util/cli"
	"github.com/curtisnewbie/chrono/util/errs"
	"github.com/curtisnewbie/chrono/util/utillog"
	"github.com/curtisnewbie/chrono/version"
)

type options struct {
	Date       string
	Pattern    string
	Ops        string
	Out        string
	Zone       string
	Locale     string
	DateStyle  string
	TimeStyle  string
	ConfigFile string
	Json       bool
	Verbose    bool
	Debug      bool
}

// Printed with -json or -verbose.
type result struct {
	Date    date.Date
	Text    string
	Weekday string
	Week    int
	Unix    int64
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("chrono", flag.ContinueOnError)
	fs.SetOutput(cli.Out)
	fs.Usage = func() {
		cli.Printlnf("\nchrono - parse a date, apply a chain of operations and print it\n")
		cli.Printlnf("  Version: %v\n", version.Version)
		cli.Printlnf("Usage of chrono:")
		fs.PrintDefaults()
		cli.Printlnf("\nProps can be overwritten with trailing args, e.g., 'chrono.timezone=Asia/Tokyo'.")
		cli.Printlnf("\nOperations: %v", strings.Join(OpNames(), ", "))
	}

	var o options
	fs.StringVar(&o.Date, "date", "", "Date to parse, current time is used if empty")
	fs.StringVar(&o.Pattern, "pattern", date.PatternDate, "Pattern of -date")
	fs.StringVar(&o.Ops, "ops", "", "Comma separated operations, e.g., 'nearestPreviousDay:monday,lastDayOfMonth'")
	fs.StringVar(&o.Out, "out", "", "Output pattern, date and time styles are used if empty")
	fs.StringVar(&o.Zone, "tz", "", "Time zone, e.g., 'UTC', 'Asia/Tokyo'")
	fs.StringVar(&o.Locale, "locale", "", "Locale, e.g., 'en-US', 'en-GB', 'de'")
	fs.StringVar(&o.DateStyle, "date-style", "", "Date style: none, short, medium, long, full")
	fs.StringVar(&o.TimeStyle, "time-style", "", "Time style: none, short, medium, long, full")
	fs.StringVar(&o.ConfigFile, "config", "", "Config file (yaml)")
	fs.BoolVar(&o.Json, "json", false, "Print result as json")
	fs.BoolVar(&o.Verbose, "verbose", false, "Print result with weekday, week of year and unix timestamp")
	fs.BoolVar(&o.Debug, "debug", false, "Debug")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if err := configure(o, fs.Args()); err != nil {
		cli.ErrorPrintlnf("%v", err)
		return exitCode(err)
	}

	d, err := evaluate(o)
	if err != nil {
		cli.ErrorPrintlnf("%v", err)
		cli.DebugPrintlnf(o.Debug, "%v", errs.ErrorStackTrace(err))
		return exitCode(err)
	}

	switch {
	case o.Json:
		if err := json.EncodeJson(cli.Out, describe(d, o.Out)); err != nil {
			cli.ErrorPrintlnf("%v", err)
			return 1
		}
	case o.Verbose:
		r := describe(d, o.Out)
		cli.PrintKeyVals([][2]string{
			{"text", r.Text},
			{"weekday", r.Weekday},
			{"week", strconv.Itoa(r.Week)},
			{"unix", strconv.FormatInt(r.Unix, 10)},
			{"zone", d.Location().String()},
		})
	default:
		cli.Printlnf("%s", render(d, o.Out))
	}
	return 0
}

// 2 for usage errors, e.g., unknown operations or stray args, 1 for the others.
func exitCode(err error) int {
	if errs.HasCode(err, errs.ErrCodeIllegalArgument) {
		return 2
	}
	return 1
}

func configure(o options, args []string) error {
	if err := config.LoadConfigFromFile(o.ConfigFile); err != nil {
		return err
	}
	if rest := config.ApplyArgs(args); len(rest) > 0 {
		return errs.ErrIllegalArgument.WithInternalMsg("unknown args: %v", rest)
	}

	for prop, val := range map[string]string{
		config.PROP_TIMEZONE:   o.Zone,
		config.PROP_LOCALE:     o.Locale,
		config.PROP_DATE_STYLE: o.DateStyle,
		config.PROP_TIME_STYLE: o.TimeStyle,
	} {
		if val != "" {
			config.SetProp(prop, val)
		}
	}
	if err := config.ConfigureLogging(); err != nil {
		return err
	}
	if o.Debug {
		return utillog.SetLevel("debug")
	}
	return nil
}

func evaluate(o options) (date.Date, error) {
	d := date.Now()
	if o.Date != "" {
		var err error
		if d, err = date.ParseE(o.Date, o.Pattern); err != nil {
			return d, err
		}
	}
	cli.DebugPrintlnf(o.Debug, "Parsed: %#v", d)
	return ApplyOps(d, o.Ops)
}

func render(d date.Date, out string) string {
	if out != "" {
		return d.Format(out)
	}
	return d.String()
}

func describe(d date.Date, out string) result {
	r := result{Date: d, Text: render(d, out)}
	if w, err := d.Weekday(); err == nil {
		r.Weekday = w.String()
	}
	r.Week, _ = d.Week()
	if t, err := d.Time(); err == nil {
		r.Unix = t.Unix()
	}
	return r
}
