package date

import (
	"fmt"
	"strings"
	"time"

	"github.com/curtisnewbie/chrono/util/errs"
	"github.com/curtisnewbie/chrono/util/strutil"
)

// Day of week, numbered the way the Gregorian calendar of most platforms does: Sunday is 1, Saturday is 7.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Convert time.Weekday to Weekday.
func WeekdayOf(w time.Weekday) Weekday {
	return Weekday(w + 1)
}

// Convert to time.Weekday.
func (w Weekday) Std() time.Weekday {
	return time.Weekday(w - 1)
}

func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return w.Std().String()
}

// Parse weekday by english name or three letter abbreviation, case-insensitive.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for w := Sunday; w <= Saturday; w++ {
		n := w.String()
		if strings.EqualFold(s, n) || (len(s) == 3 && strutil.HasPrefixIgnoreCase(n, s)) {
			return w, nil
		}
	}
	return 0, errs.ErrIllegalArgument.WithInternalMsg("unknown weekday: '%v'", s)
}

// Month of year, January is 1, December is 12.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// Convert time.Month to Month.
func MonthOf(m time.Month) Month {
	return Month(m)
}

// Convert to time.Month.
func (m Month) Std() time.Month {
	return time.Month(m)
}

func (m Month) Valid() bool {
	return m >= January && m <= December
}

func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return m.Std().String()
}

// Parse month by english name or three letter abbreviation, case-insensitive.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	for m := January; m <= December; m++ {
		n := m.String()
		if strings.EqualFold(s, n) || (len(s) == 3 && strutil.HasPrefixIgnoreCase(n, s)) {
			return m, nil
		}
	}
	return 0, errs.ErrIllegalArgument.WithInternalMsg("unknown month: '%v'", s)
}

// Formatting style for the date part or the time part, from terse to verbose.
type Style int

const (
	StyleNone Style = iota
	StyleShort
	StyleMedium
	StyleLong
	StyleFull
)

var styleNames = [...]string{"none", "short", "medium", "long", "full"}

func (s Style) String() string {
	if s < StyleNone || s > StyleFull {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// Parse style name, e.g., "short", "FULL".
func ParseStyle(s string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return Style(i), nil
		}
	}
	return StyleNone, errs.ErrIllegalArgument.WithInternalMsg("unknown style: '%v'", s)
}
