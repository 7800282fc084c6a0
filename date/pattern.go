package date

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/curtisnewbie/chrono/util/errs"
	"github.com/curtisnewbie/chrono/util/hash"
	"github.com/curtisnewbie/chrono/util/strutil"
)

// Common patterns, written in Unicode date pattern syntax.
const (
	PatternDate        = "yyyy-MM-dd"
	PatternDateTime    = "yyyy-MM-dd HH:mm:ss"
	PatternDateTimeMs  = "yyyy-MM-dd HH:mm:ss.SSS"
	PatternClassic     = "yyyy/MM/dd HH:mm:ss"
	PatternCompactDate = "yyyyMMdd"
	PatternISO8601     = "yyyy-MM-dd'T'HH:mm:ssXXX"
)

// field letters understood by the pattern engine
const patternLetters = "GyYMLdDEecahHkKmsSzZXx"

type token struct {
	field rune // 0 for literal
	count int
	lit   string
}

func (t token) numeric() bool {
	switch t.field {
	case 'y', 'Y', 'd', 'D', 'h', 'H', 'k', 'K', 'm', 's', 'S':
		return true
	case 'M', 'L', 'e', 'c':
		return t.count <= 2
	}
	return false
}

const (
	maxCachedPatternLen = 64
	maxCachedPatterns   = 256
)

var compiledPatterns = hash.NewRWMap[string, []token]()

// Split pattern into field and literal tokens.
//
// Letters are fields, text within single quotes is literal, two single quotes is a literal quote.
//
// Only short and valid patterns are cached, at most maxCachedPatterns of them.
func compilePattern(pattern string) ([]token, error) {
	if len(pattern) > maxCachedPatternLen {
		return tokenize(pattern)
	}
	if toks, ok := compiledPatterns.Get(pattern); ok {
		return toks, nil
	}
	toks, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	if compiledPatterns.Len() < maxCachedPatterns {
		compiledPatterns.Put(pattern, toks)
	}
	return toks, nil
}

func tokenize(pattern string) ([]token, error) {
	var toks []token
	var lit strings.Builder
	flushLit := func() {
		if lit.Len() > 0 {
			toks = append(toks, token{lit: lit.String()})
			lit.Reset()
		}
	}

	ru := []rune(pattern)
	for i := 0; i < len(ru); {
		c := ru[i]
		switch {
		case c == '\'':
			if i+1 < len(ru) && ru[i+1] == '\'' {
				lit.WriteRune('\'')
				i += 2
				continue
			}
			j := i + 1
			closed := false
			for j < len(ru) {
				if ru[j] == '\'' {
					if j+1 < len(ru) && ru[j+1] == '\'' {
						lit.WriteRune('\'')
						j += 2
						continue
					}
					closed = true
					break
				}
				lit.WriteRune(ru[j])
				j++
			}
			if !closed {
				return nil, errs.ErrInvalidPattern.WithInternalMsg("unterminated quote in '%v'", pattern)
			}
			i = j + 1
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			if !strings.ContainsRune(patternLetters, c) {
				return nil, errs.ErrInvalidPattern.WithInternalMsg("unsupported letter '%c' in '%v'", c, pattern)
			}
			j := i
			for j < len(ru) && ru[j] == c {
				j++
			}
			flushLit()
			toks = append(toks, token{field: c, count: j - i})
			i = j
		default:
			lit.WriteRune(c)
			i++
		}
	}
	flushLit()
	return toks, nil
}

// Render t using the tokens, t should already be in the desired location.
func formatTokens(toks []token, t time.Time, ld *localeData) string {
	var b strings.Builder
	for _, tk := range toks {
		if tk.field == 0 {
			b.WriteString(tk.lit)
			continue
		}
		n := tk.count
		switch tk.field {
		case 'G':
			era := 1
			if t.Year() <= 0 {
				era = 0
			}
			b.WriteString(ld.eras[era])
		case 'y', 'Y':
			y := t.Year()
			if tk.field == 'Y' {
				y, _ = t.ISOWeek()
			}
			if y <= 0 {
				y = 1 - y // proleptic Gregorian, year 0 is 1 BC
			}
			if n == 2 {
				b.WriteString(strutil.PadNum(y%100, 2))
			} else {
				b.WriteString(strutil.PadNum(y, n))
			}
		case 'M', 'L':
			formatName(&b, int(t.Month()), n, ld.months[t.Month()-1], ld.shortMonths[t.Month()-1])
		case 'd':
			b.WriteString(strutil.PadNum(t.Day(), n))
		case 'D':
			b.WriteString(strutil.PadNum(t.YearDay(), n))
		case 'E':
			wd := t.Weekday()
			formatName(&b, -1, max(n, 3), ld.weekdays[wd], ld.shortWeekdays[wd])
		case 'e', 'c':
			wd := t.Weekday()
			formatName(&b, int(WeekdayOf(wd)), n, ld.weekdays[wd], ld.shortWeekdays[wd])
		case 'a':
			if t.Hour() < 12 {
				b.WriteString(ld.am)
			} else {
				b.WriteString(ld.pm)
			}
		case 'h':
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			b.WriteString(strutil.PadNum(h, n))
		case 'H':
			b.WriteString(strutil.PadNum(t.Hour(), n))
		case 'k':
			h := t.Hour()
			if h == 0 {
				h = 24
			}
			b.WriteString(strutil.PadNum(h, n))
		case 'K':
			b.WriteString(strutil.PadNum(t.Hour()%12, n))
		case 'm':
			b.WriteString(strutil.PadNum(t.Minute(), n))
		case 's':
			b.WriteString(strutil.PadNum(t.Second(), n))
		case 'S':
			frac := strutil.PadNum(t.Nanosecond(), 9)
			if n <= 9 {
				b.WriteString(frac[:n])
			} else {
				b.WriteString(frac + strings.Repeat("0", n-9))
			}
		case 'z':
			if n >= 4 {
				b.WriteString(longZoneName(t))
			} else {
				b.WriteString(shortZoneName(t))
			}
		case 'Z':
			_, off := t.Zone()
			switch {
			case n <= 3:
				b.WriteString(formatOffset(off, false, false))
			case n == 4:
				b.WriteString("GMT")
				if off != 0 {
					b.WriteString(formatOffset(off, true, false))
				}
			default:
				if off == 0 {
					b.WriteString("Z")
				} else {
					b.WriteString(formatOffset(off, true, false))
				}
			}
		case 'X', 'x':
			_, off := t.Zone()
			if off == 0 && tk.field == 'X' {
				b.WriteString("Z")
				break
			}
			b.WriteString(formatOffset(off, n >= 3, n == 1))
		}
	}
	return b.String()
}

// numeric when count <= 2, short name when 3, full name when 4, the first letter of the full name when 5 or more.
func formatName(b *strings.Builder, num int, count int, full string, short string) {
	switch {
	case count <= 2 && num >= 0:
		b.WriteString(strutil.PadNum(num, count))
	case count <= 3:
		b.WriteString(short)
	case count == 4:
		b.WriteString(full)
	default:
		ru := []rune(full)
		b.WriteRune(ru[0])
	}
}

func formatOffset(off int, colon bool, hoursOnly bool) string {
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	h, m := off/3600, (off%3600)/60
	if hoursOnly && m == 0 {
		return sign + strutil.PadNum(h, 2)
	}
	if colon {
		return sign + strutil.PadNum(h, 2) + ":" + strutil.PadNum(m, 2)
	}
	return sign + strutil.PadNum(h, 2) + strutil.PadNum(m, 2)
}

func longZoneName(t time.Time) string {
	loc := t.Location()
	switch loc.String() {
	case "UTC":
		return "Coordinated Universal Time"
	case "Local", "":
		name, _ := t.Zone()
		return name
	}
	return loc.String()
}

// Abbreviation of t's zone if it can be parsed back to the same offset, otherwise GMT with offset, e.g., GMT+08:00.
func shortZoneName(t time.Time) string {
	name, off := t.Zone()
	if known, ok := zoneAbbrevs()[name]; ok && known == off {
		return name
	}
	if off == 0 {
		return "GMT"
	}
	return "GMT" + formatOffset(off, true, false)
}

// zones whose abbreviations are recognized, the first zone using an abbreviation wins, e.g., IST is India not Ireland.
var abbrevZones = []string{
	"UTC",
	"America/New_York", "America/Chicago", "America/Denver", "America/Phoenix", "America/Los_Angeles",
	"America/Anchorage", "Pacific/Honolulu", "America/Halifax", "America/St_Johns",
	"Europe/London", "Europe/Berlin", "Europe/Athens", "Europe/Moscow",
	"Asia/Kolkata", "Asia/Karachi", "Asia/Jakarta", "Asia/Hong_Kong", "Asia/Tokyo", "Asia/Seoul",
	"Australia/Perth", "Australia/Adelaide", "Australia/Sydney", "Pacific/Auckland",
	"Africa/Johannesburg", "Africa/Lagos", "Africa/Nairobi",
}

// Abbreviation to offset in seconds, zones in abbrevZones are sampled in winter and summer of the current year.
var zoneAbbrevs = sync.OnceValue(func() map[string]int {
	m := map[string]int{"UTC": 0, "GMT": 0}
	y := time.Now().Year()
	for _, name := range abbrevZones {
		loc, err := loadLocation(name)
		if err != nil {
			continue
		}
		for _, mon := range []time.Month{time.January, time.July} {
			abbrev, off := time.Date(y, mon, 1, 0, 0, 0, 0, loc).Zone()
			if abbrev == "" || !isLetter(abbrev[0]) {
				continue // numeric abbreviations, e.g., +03
			}
			if _, ok := m[abbrev]; !ok {
				m[abbrev] = off
			}
		}
	}
	return m
})

// fields collected while parsing.
type parsed struct {
	bc           bool
	year         int
	twoDigitYear bool
	month        int
	day          int
	yday         int
	hour         int
	minute       int
	second       int
	nsec         int
	pm           int // 0 unset, 1 am, 2 pm
	offset       *int
	zone         *time.Location
}

// Parse value using tokens strictly, the whole value must be consumed.
//
// Missing fields default to 1970-01-01 00:00:00 in loc.
func parseTokens(toks []token, value string, loc *time.Location, ld *localeData) (time.Time, error) {
	p := parsed{year: 1970, month: 1, day: 1}
	s := value
	fail := func(tk token) (time.Time, error) {
		name := tk.lit
		if tk.field != 0 {
			name = strings.Repeat(string(tk.field), tk.count)
		}
		return time.Time{}, errs.ErrParseFailed.WithInternalMsg("value '%v' does not match '%v' at '%v'", value, name, s)
	}

	for i, tk := range toks {
		if tk.field == 0 {
			var ok bool
			if s, ok = cutLiteral(s, tk.lit); !ok {
				return fail(tk)
			}
			continue
		}

		// adjacent numeric fields, e.g., yyyyMMdd, are split by their declared width
		width := 0
		if i+1 < len(toks) && toks[i+1].numeric() {
			width = tk.count
			if tk.field == 'y' && tk.count != 2 && tk.count < 4 {
				width = 4
			}
		}

		var n int
		var ok bool
		switch tk.field {
		case 'G':
			var idx int
			if idx, s, ok = cutName(s, ld.eras[:], []string{"BC", "AD"}); !ok {
				return fail(tk)
			}
			p.bc = idx == 0
		case 'Y':
			// week-based year needs week of year to be resolved, which is not supported
			return time.Time{}, errs.ErrInvalidPattern.WithInternalMsg("week-based year 'Y' can not be parsed, use 'y' instead")
		case 'y':
			if tk.count == 2 {
				if n, s, ok = cutNum(s, 2, 2); !ok {
					return fail(tk)
				}
				p.twoDigitYear = true
			} else if n, s, ok = cutNum(s, 1, width); !ok {
				return fail(tk)
			}
			p.year = n
		case 'M', 'L':
			if tk.count <= 2 {
				if n, s, ok = cutNum(s, 1, width); !ok {
					return fail(tk)
				}
				p.month = n
			} else {
				var idx int
				if idx, s, ok = cutName(s, ld.months[:], ld.shortMonths[:]); !ok {
					return fail(tk)
				}
				p.month = idx + 1
			}
		case 'd':
			if n, s, ok = cutNum(s, 1, width); !ok {
				return fail(tk)
			}
			p.day = n
		case 'D':
			if n, s, ok = cutNum(s, 1, width); !ok {
				return fail(tk)
			}
			p.yday = n
		case 'E', 'e', 'c':
			// weekday is informational, the date is determined by the other fields
			if tk.field != 'E' && tk.count <= 2 {
				if _, s, ok = cutNum(s, 1, width); !ok {
					return fail(tk)
				}
			} else if _, s, ok = cutName(s, ld.weekdays[:], ld.shortWeekdays[:]); !ok {
				return fail(tk)
			}
		case 'a':
			var idx int
			if idx, s, ok = cutName(s, []string{ld.am, ld.pm}, []string{"AM", "PM"}); !ok {
				return fail(tk)
			}
			p.pm = idx + 1
		case 'h', 'H', 'k', 'K':
			if n, s, ok = cutNum(s, 1, width); !ok {
				return fail(tk)
			}
			switch tk.field {
			case 'h':
				if n < 1 || n > 12 {
					return fail(tk)
				}
				n %= 12
			case 'k':
				if n < 1 || n > 24 {
					return fail(tk)
				}
				n %= 24
			case 'K':
				if n > 11 {
					return fail(tk)
				}
			}
			p.hour = n
		case 'm':
			if n, s, ok = cutNum(s, 1, width); !ok {
				return fail(tk)
			}
			p.minute = n
		case 's':
			if n, s, ok = cutNum(s, 1, width); !ok {
				return fail(tk)
			}
			p.second = n
		case 'S':
			digits := strutil.LeadingDigits(s, max(width, 0))
			if digits < 1 {
				return fail(tk)
			}
			frac := s[:digits]
			s = s[digits:]
			if len(frac) > 9 {
				frac = frac[:9]
			}
			p.nsec, _ = strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
		case 'z', 'Z', 'X', 'x':
			if s, ok = cutZone(s, &p, loc); !ok {
				return fail(tk)
			}
		}
	}

	if s != "" {
		return time.Time{}, errs.ErrParseFailed.WithInternalMsg("value '%v' has trailing text '%v'", value, s)
	}
	return p.compose(loc, value)
}

func (p *parsed) compose(loc *time.Location, value string) (time.Time, error) {
	year := p.year
	if p.twoDigitYear {
		if year < 69 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if p.bc {
		year = 1 - year
	}

	hour := p.hour
	switch p.pm {
	case 1:
		if hour >= 12 {
			hour -= 12
		}
	case 2:
		if hour < 12 {
			hour += 12
		}
	}

	if p.month < 1 || p.month > 12 || hour > 23 || p.minute > 59 || p.second > 59 {
		return time.Time{}, errs.ErrParseFailed.WithInternalMsg("value '%v' has fields out of range", value)
	}

	month, day := p.month, p.day
	if p.yday > 0 {
		if p.yday > daysInYear(year) {
			return time.Time{}, errs.ErrParseFailed.WithInternalMsg("value '%v' has day of year out of range", value)
		}
		yd := time.Date(year, time.January, p.yday, 0, 0, 0, 0, time.UTC)
		month, day = int(yd.Month()), yd.Day()
	}
	if day < 1 || day > daysIn(time.Month(month), year) {
		return time.Time{}, errs.ErrParseFailed.WithInternalMsg("value '%v' has day out of range", value)
	}

	zone := loc
	if p.zone != nil {
		zone = p.zone
	} else if p.offset != nil {
		zone = time.FixedZone("", *p.offset)
	}
	t := time.Date(year, time.Month(month), day, hour, p.minute, p.second, p.nsec, zone)
	return t.In(loc), nil
}

func cutLiteral(s string, lit string) (string, bool) {
	// whitespace in pattern matches any run of whitespace
	if lit != "" && strings.TrimSpace(lit) == "" {
		trimmed := strings.TrimLeft(s, " \t")
		return trimmed, len(trimmed) < len(s)
	}
	if strings.HasPrefix(s, lit) {
		return s[len(lit):], true
	}
	return s, false
}

// Cut number with at least min digits and at most max digits (max <= 0 means no limit).
func cutNum(s string, min int, max int) (int, string, bool) {
	n := strutil.LeadingDigits(s, max)
	if n < min || n > 10 {
		return 0, s, false
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, s, false
	}
	return v, s[n:], true
}

// Cut the longest name matching the prefix of s, case-insensitive, returns index of the name in its list.
func cutName(s string, lists ...[]string) (int, string, bool) {
	idx, best := -1, 0
	for _, l := range lists {
		for i, name := range l {
			if len(name) > best && strutil.HasPrefixIgnoreCase(s, name) {
				idx, best = i, len(name)
			}
		}
	}
	if idx < 0 {
		return 0, s, false
	}
	return idx, s[best:], true
}

// Cut zone designator: Z, +hh, +hhmm, +hh:mm, GMT+hh:mm, UTC, GMT, a known abbreviation or a tz database name.
//
// Abbreviation of hint, e.g., JST for Asia/Tokyo, is also accepted, the parsed value then stays in hint.
// Other known abbreviations, e.g., PDT, are parsed as fixed offsets.
func cutZone(s string, p *parsed, hint *time.Location) (string, bool) {
	if rest, ok := strutil.CutPrefixIgnoreCase(s, "Coordinated Universal Time"); ok {
		p.zone = time.UTC
		return rest, true
	}
	if s == "Z" || (strings.HasPrefix(s, "Z") && !isLetter(s[1])) {
		zero := 0
		p.offset = &zero
		return s[1:], true
	}
	for _, prefix := range []string{"GMT", "UTC"} {
		if rest, ok := strutil.CutPrefixIgnoreCase(s, prefix); ok {
			if rest == "" || (rest[0] != '+' && rest[0] != '-') {
				p.zone = time.UTC
				return rest, true
			}
			s = rest
			break
		}
	}
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign := 1
		if s[0] == '-' {
			sign = -1
		}
		rest := s[1:]
		h, rest, ok := cutNum(rest, 1, 2)
		if !ok {
			return s, false
		}
		m := 0
		if strings.HasPrefix(rest, ":") {
			if m, rest, ok = cutNum(rest[1:], 2, 2); !ok {
				return s, false
			}
		} else if strutil.LeadingDigits(rest, 2) == 2 {
			m, rest, _ = cutNum(rest, 2, 2)
		}
		if h > 18 || m > 59 {
			return s, false
		}
		off := sign * (h*3600 + m*60)
		p.offset = &off
		return rest, true
	}

	// tz database name, e.g., Asia/Tokyo
	end := 0
	for end < len(s) {
		c := s[end]
		if isLetter(c) || c == '/' || c == '_' || c == '-' || (c >= '0' && c <= '9' && end > 0) {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return s, false
	}
	name := s[:end]
	if isZoneAbbrev(name, hint) {
		return s[end:], true
	}
	if off, ok := zoneAbbrevs()[name]; ok {
		p.offset = &off
		return s[end:], true
	}
	loc, err := loadLocation(name)
	if err != nil {
		return s, false
	}
	p.zone = loc
	return s[end:], true
}

// Check whether name is the abbreviation of loc in winter or in summer, e.g., CET or CEST for Europe/Berlin.
func isZoneAbbrev(name string, loc *time.Location) bool {
	if loc == nil {
		return false
	}
	y := time.Now().Year()
	for _, m := range []time.Month{time.January, time.July} {
		if abbrev, _ := time.Date(y, m, 1, 0, 0, 0, 0, loc).Zone(); abbrev == name {
			return true
		}
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}
