package date

import (
	"github.com/curtisnewbie/chrono/util/errs"
	"github.com/curtisnewbie/chrono/util/utillog"
	"golang.org/x/text/language"
)

// Render the Date using the stored pattern, or the stored date and time styles if the pattern is empty.
//
// Empty string is returned if the Date has no instant.
func (d Date) String() string {
	if !d.valid {
		return ""
	}
	pattern := d.pattern
	if pattern == "" {
		_, ld := matchLocale(d.locale)
		pattern = ld.stylePattern(d.dateStyle, d.timeStyle)
	}
	if pattern == "" {
		return ""
	}
	s, err := d.FormatE(pattern)
	if err != nil {
		utillog.DebugLog("Failed to format date using '%v', %v", pattern, err)
		return ""
	}
	return s
}

// Render the Date using pattern, the stored pattern is not changed.
//
// Empty string is returned if the Date has no instant or the pattern is invalid.
func (d Date) Format(pattern string) string {
	s, _ := d.FormatE(pattern)
	return s
}

// Same as [Date.Format] but also returns the cause of failure.
func (d Date) FormatE(pattern string) (string, error) {
	if !d.valid {
		return "", errs.ErrAbsentInstant.New()
	}
	toks, err := compilePattern(pattern)
	if err != nil {
		return "", err
	}
	_, ld := matchLocale(d.locale)
	return formatTokens(toks, d.t, ld), nil
}

// Stored pattern, empty if the Date is rendered using styles.
func (d Date) Pattern() string {
	return d.pattern
}

// Store pattern for [Date.String].
func (d Date) WithPattern(pattern string) Date {
	d.pattern = pattern
	return d
}

func (d Date) DateStyle() Style {
	return d.dateStyle
}

// Store date style for [Date.String], the stored pattern is cleared.
func (d Date) WithDateStyle(s Style) Date {
	d.dateStyle = s
	d.pattern = ""
	return d
}

func (d Date) TimeStyle() Style {
	return d.timeStyle
}

// Store time style for [Date.String], the stored pattern is cleared.
func (d Date) WithTimeStyle(s Style) Date {
	d.timeStyle = s
	d.pattern = ""
	return d
}

func (d Date) Locale() language.Tag {
	return d.locale
}

// Store locale for names and styles, it's matched against [SupportedLocales], e.g., de-CH is resolved to de.
func (d Date) WithLocale(tag language.Tag) Date {
	d.locale, _ = matchLocale(tag)
	return d
}
