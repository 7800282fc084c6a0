// Package date provides [Date], a fluent calendar value.
//
// A [Date] is an instant plus the location used to decompose it into calendar fields, and the pattern, styles and locale
// used to render it. Every operation returns a new [Date], so operations can be chained, e.g.,
//
//	d := date.Of(2024, 3, 15).NearestPreviousDay(date.Monday).SetTimeAsZero() // 2024-03-11 00:00:00
//	last := date.Now().LastDayOfMonth().Format("yyyy-MM-dd")
//
// Shifting by days carries into months and years. Shifting by months or years clamps the day to the last day of the target month,
// e.g., Jan 31 + 1 month is Feb 29 in a leap year. Field setters such as [Date.WithDay] normalize out of range values instead,
// e.g., day 32 of January is February 1st.
//
// Patterns use the Unicode date pattern syntax (e.g., "yyyy-MM-dd'T'HH:mm:ss"), not go layouts. Supported letters:
//
//	G era, y year, yy two-digit year, Y ISO week year, M/L month (MMM short name, MMMM full name),
//	d day of month, D day of year, E weekday name, e/c weekday number (Sunday is 1), a AM/PM,
//	h hour 1-12, H hour 0-23, k hour 1-24, K hour 0-11, m minute, s second, S fraction of second,
//	z zone name, Z/X/x zone offset.
//
// Text within single quotes is literal, two single quotes is a single quote.
//
// When a [Date] has no instant, e.g., [Parse] failed, all operations return the [Date] unchanged,
// accessors return [errs.ErrAbsentInstant] and [Date.String] returns empty string.
//
// Defaults of new [Date] values, i.e., the location, the pattern, the styles and the locale, are read from package config,
// see [config.PROP_TIMEZONE] and the other props.
//
// [Date] implements [sql.Scanner], [driver.Valuer], [json.Marshaler] and [json.Unmarshaler], it can be used in GORM models
// just like time.Time.
package date
