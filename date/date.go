package date

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/curtisnewbie/chrono/config"
	"github.com/curtisnewbie/chrono/util/errs"
	"github.com/curtisnewbie/chrono/util/hash"
	"github.com/curtisnewbie/chrono/util/utillog"
	"golang.org/x/text/language"
)

var (
	// 2001-01-01 00:00:00 UTC, the epoch of FromReferenceOffset.
	ReferenceEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Timezone cache for tz database names
var locationCache = hash.NewRWMap[string, *time.Location]()

// Date is an instant with the location, the pattern, the styles and the locale used to decompose and render it.
//
// Date is immutable, every operation returns a new Date, the receiver is never modified.
//
// A Date may have no instant at all, e.g., when [Parse] fails. Operations on such Date return it unchanged,
// accessors return [errs.ErrAbsentInstant] and [Date.String] returns empty string.
//
// The zero value is a Date without instant in UTC.
type Date struct {
	t         time.Time
	valid     bool
	loc       *time.Location
	pattern   string
	dateStyle Style
	timeStyle Style
	locale    language.Tag
}

// calendar fields of the instant in the Date's location.
type fields struct {
	year, month, day, hour, minute, second, nsec int
}

// Date without instant, configured with defaults from package config.
func blank() Date {
	d := Date{
		loc:       time.Local,
		dateStyle: StyleFull,
		timeStyle: StyleFull,
		locale:    supportedLocales[0],
	}

	if tz := config.GetPropStr(config.PROP_TIMEZONE); tz != "" {
		if loc, err := loadLocation(tz); err == nil {
			d.loc = loc
		} else {
			utillog.ErrorLog("Invalid %v: '%v', fallback to Local, %v", config.PROP_TIMEZONE, tz, err)
		}
	}
	d.pattern = config.GetPropStr(config.PROP_PATTERN)
	if s, err := ParseStyle(config.GetPropStr(config.PROP_DATE_STYLE)); err == nil {
		d.dateStyle = s
	}
	if s, err := ParseStyle(config.GetPropStr(config.PROP_TIME_STYLE)); err == nil {
		d.timeStyle = s
	}
	if tag, err := language.Parse(config.GetPropStr(config.PROP_LOCALE)); err == nil {
		d.locale, _ = matchLocale(tag)
	}
	return d
}

// Current instant.
func Now() Date {
	return blank().withTime(time.Now())
}

// Compose date from year, month and day at midnight.
//
// Fields out of range are normalized, e.g., month 13 is January of the next year.
func Of(year int, month int, day int) Date {
	return OfTime(year, month, day, 0, 0, 0)
}

// Compose date from calendar fields.
//
// Fields out of range are normalized, e.g., day 32 rolls into the next month.
func OfTime(year int, month int, day int, hour int, minute int, second int) Date {
	d := blank()
	return d.withTime(time.Date(year, time.Month(month), day, hour, minute, second, 0, d.loc))
}

// Parse value using the given pattern, e.g., "yyyy-MM-dd".
//
// Date without instant is returned if the value doesn't match the pattern, see [ParseE] for the cause.
func Parse(value string, pattern string) Date {
	d, _ := ParseE(value, pattern)
	return d
}

// Same as [Parse] but also returns the cause of parse failure.
func ParseE(value string, pattern string) (Date, error) {
	d := blank()
	toks, err := compilePattern(pattern)
	if err != nil {
		utillog.DebugLog("Failed to compile pattern '%v', %v", pattern, err)
		return d, err
	}
	_, ld := matchLocale(d.locale)
	t, err := parseTokens(toks, value, d.loc, ld)
	if err != nil {
		utillog.DebugLog("Failed to parse '%v' using '%v', %v", value, pattern, err)
		return d, err
	}
	return d.withTime(t), nil
}

// Wrap time.Time.
func FromTime(t time.Time) Date {
	return blank().withTime(t)
}

// Date at the offset in seconds from [ReferenceEpoch].
func FromReferenceOffset(seconds float64) Date {
	return blank().withTime(ReferenceEpoch.Add(time.Duration(math.Round(seconds * float64(time.Second)))))
}

// Date at the offset in seconds from unix epoch.
func FromUnix(sec int64) Date {
	return blank().withTime(time.Unix(sec, 0))
}

// Date at the offset in milliseconds from unix epoch.
func FromUnixMilli(ms int64) Date {
	return blank().withTime(time.UnixMilli(ms))
}

// Convert v to Date.
//
// Supported types are the ones supported by [Date.Scan] and Date itself.
func FromAny(v any) (Date, error) {
	switch dv := v.(type) {
	case Date:
		return dv, nil
	case *Date:
		if dv == nil {
			return blank(), nil
		}
		return *dv, nil
	}
	d := blank()
	return d, d.Scan(v)
}

func loadLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "Local":
		return time.Local, nil
	case "", "UTC":
		return time.UTC, nil
	}

	return locationCache.GetElseErr(name, func(name string) (*time.Location, error) {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, errs.ErrUnknownZone.Wrapf(err, "zone: '%v'", name)
		}
		return loc, nil
	})
}

func (d Date) location() *time.Location {
	if d.loc == nil {
		return time.UTC
	}
	return d.loc
}

func (d Date) withTime(t time.Time) Date {
	d.t = t.In(d.location())
	d.valid = true
	return d
}

func (d Date) decompose() fields {
	y, m, dd := d.t.Date()
	h, mi, s := d.t.Clock()
	return fields{year: y, month: int(m), day: dd, hour: h, minute: mi, second: s, nsec: d.t.Nanosecond()}
}

func (f fields) compose(loc *time.Location) time.Time {
	return time.Date(f.year, time.Month(f.month), f.day, f.hour, f.minute, f.second, f.nsec, loc)
}

// Decompose, change the fields and recompose, out of range fields are normalized.
func (d Date) recompose(change func(f *fields)) Date {
	if !d.valid {
		return d
	}
	f := d.decompose()
	change(&f)
	return d.withTime(f.compose(d.location()))
}

func (d Date) field(get func(f fields) int) (int, error) {
	if !d.valid {
		return 0, errs.ErrAbsentInstant.New()
	}
	return get(d.decompose()), nil
}

// Whether the Date has no instant.
func (d Date) IsAbsent() bool {
	return !d.valid
}

// The instant in the Date's location.
func (d Date) Time() (time.Time, error) {
	if !d.valid {
		return time.Time{}, errs.ErrAbsentInstant.New()
	}
	return d.t, nil
}

func (d Date) Year() (int, error) {
	return d.field(func(f fields) int { return f.year })
}

func (d Date) Month() (int, error) {
	return d.field(func(f fields) int { return f.month })
}

func (d Date) Day() (int, error) {
	return d.field(func(f fields) int { return f.day })
}

func (d Date) Hour() (int, error) {
	return d.field(func(f fields) int { return f.hour })
}

func (d Date) Minute() (int, error) {
	return d.field(func(f fields) int { return f.minute })
}

func (d Date) Second() (int, error) {
	return d.field(func(f fields) int { return f.second })
}

func (d Date) Weekday() (Weekday, error) {
	if !d.valid {
		return 0, errs.ErrAbsentInstant.New()
	}
	return WeekdayOf(d.t.Weekday()), nil
}

// Week of year, weeks start on Sunday and week 1 is the week containing January 1st.
//
// The last days of December that share the week with January 1st of the next year are in week 1.
func (d Date) Week() (int, error) {
	if !d.valid {
		return 0, errs.ErrAbsentInstant.New()
	}
	y, m, dd := d.t.Date()
	saturday := time.Date(y, m, dd+int(time.Saturday-d.t.Weekday()), 0, 0, 0, 0, time.UTC)
	if saturday.Year() > y {
		return 1, nil
	}
	jan1 := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	return (d.t.YearDay()-1+int(jan1.Weekday()))/7 + 1, nil
}

// ISO 8601 week-numbering year and week.
func (d Date) ISOWeek() (year int, week int, err error) {
	if !d.valid {
		return 0, 0, errs.ErrAbsentInstant.New()
	}
	year, week = d.t.ISOWeek()
	return year, week, nil
}

func (d Date) WithYear(year int) Date {
	return d.recompose(func(f *fields) { f.year = year })
}

func (d Date) WithMonth(month int) Date {
	return d.recompose(func(f *fields) { f.month = month })
}

func (d Date) WithDay(day int) Date {
	return d.recompose(func(f *fields) { f.day = day })
}

func (d Date) WithHour(hour int) Date {
	return d.recompose(func(f *fields) { f.hour = hour })
}

func (d Date) WithMinute(minute int) Date {
	return d.recompose(func(f *fields) { f.minute = minute })
}

func (d Date) WithSecond(second int) Date {
	return d.recompose(func(f *fields) { f.second = second })
}

// Same instant, decomposed and rendered in loc.
func (d Date) In(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	d.loc = loc
	if d.valid {
		d.t = d.t.In(loc)
	}
	return d
}

// Same as [Date.In] but loads the location by tz database name, e.g., "Asia/Tokyo".
func (d Date) InZone(name string) (Date, error) {
	loc, err := loadLocation(name)
	if err != nil {
		return d, err
	}
	return d.In(loc), nil
}

func (d Date) Location() *time.Location {
	return d.location()
}

// Same instant compared, location and formatting are ignored. Dates without instant are equal to each other.
func (d Date) Equal(o Date) bool {
	if !d.valid || !o.valid {
		return d.valid == o.valid
	}
	return d.t.Equal(o.t)
}

func (d Date) Before(o Date) bool {
	return d.valid && o.valid && d.t.Before(o.t)
}

func (d Date) After(o Date) bool {
	return d.valid && o.valid && d.t.After(o.t)
}

func (d Date) GoString() string {
	if !d.valid {
		return "date.Date{absent}"
	}
	return fmt.Sprintf("date.Date{%v}", d.t.Format("2006-01-02 15:04:05.999999999 (MST)"))
}
