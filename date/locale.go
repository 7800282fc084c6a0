package date

import (
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"golang.org/x/text/language"
)

// Names and style patterns of one locale.
//
// Weekday slices start at Sunday, month slices at January.
type localeData struct {
	months        [12]string
	shortMonths   [12]string
	weekdays      [7]string
	shortWeekdays [7]string
	am, pm        string
	eras          [2]string // BC, AD

	// indexed by Style, StyleNone is always empty
	datePatterns [5]string
	timePatterns [5]string

	// connects date and time part, indexed by the date Style
	connectors [5]string
}

var (
	americanEnglish = newLocaleData(en_US.New(), localeData{
		am:           "AM",
		pm:           "PM",
		eras:         [2]string{"BC", "AD"},
		datePatterns: [5]string{"", "M/d/yy", "MMM d, y", "MMMM d, y", "EEEE, MMMM d, y"},
		timePatterns: [5]string{"", "h:mm a", "h:mm:ss a", "h:mm:ss a z", "h:mm:ss a zzzz"},
		connectors:   [5]string{"", ", ", ", ", " 'at' ", " 'at' "},
	})

	britishEnglish = newLocaleData(en_GB.New(), localeData{
		am:           "am",
		pm:           "pm",
		eras:         [2]string{"BC", "AD"},
		datePatterns: [5]string{"", "dd/MM/y", "d MMM y", "d MMMM y", "EEEE d MMMM y"},
		timePatterns: [5]string{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		connectors:   [5]string{"", ", ", ", ", " 'at' ", " 'at' "},
	})

	german = newLocaleData(de.New(), localeData{
		am:           "AM",
		pm:           "PM",
		eras:         [2]string{"v. Chr.", "n. Chr."},
		datePatterns: [5]string{"", "dd.MM.yy", "dd.MM.y", "d. MMMM y", "EEEE, d. MMMM y"},
		timePatterns: [5]string{"", "HH:mm", "HH:mm:ss", "HH:mm:ss z", "HH:mm:ss zzzz"},
		connectors:   [5]string{"", ", ", ", ", " 'um' ", " 'um' "},
	})
)

// Fill month and weekday names from the CLDR translator, the rest is taken from ld.
//
// Translators only expose formatting functions, the style patterns are kept here so that the same patterns can be parsed.
func newLocaleData(tr locales.Translator, ld localeData) *localeData {
	for m := time.January; m <= time.December; m++ {
		ld.months[m-1] = tr.MonthWide(m)
		ld.shortMonths[m-1] = tr.MonthAbbreviated(m)
	}
	for w := time.Sunday; w <= time.Saturday; w++ {
		ld.weekdays[w] = tr.WeekdayWide(w)
		ld.shortWeekdays[w] = tr.WeekdayAbbreviated(w)
	}
	return &ld
}

// supported locales, the first one is the fallback.
var (
	supportedLocales = []language.Tag{language.AmericanEnglish, language.BritishEnglish, language.German}
	localeTables     = []*localeData{americanEnglish, britishEnglish, german}
	localeMatcher    = language.NewMatcher(supportedLocales)
)

// Resolve the closest supported locale.
func matchLocale(tag language.Tag) (language.Tag, *localeData) {
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(supportedLocales) {
		return supportedLocales[0], localeTables[0]
	}
	return supportedLocales[idx], localeTables[idx]
}

// Supported locales.
func SupportedLocales() []language.Tag {
	return append([]language.Tag(nil), supportedLocales...)
}

// Build the pattern for the given date and time style.
//
// Empty string is returned when both styles are StyleNone.
func (ld *localeData) stylePattern(ds Style, ts Style) string {
	dp := ""
	if ds > StyleNone && ds <= StyleFull {
		dp = ld.datePatterns[ds]
	}
	tp := ""
	if ts > StyleNone && ts <= StyleFull {
		tp = ld.timePatterns[ts]
	}
	switch {
	case dp == "":
		return tp
	case tp == "":
		return dp
	default:
		return dp + ld.connectors[ds] + tp
	}
}
