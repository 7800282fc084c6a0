package date

import "time"

// Shift by years, months and days.
//
// Days carry into months and years. Months and years keep the day of month when it exists in the target month,
// otherwise the day is clamped to the last day of the target month, e.g., Jan 31 + 1 month is Feb 28 (or 29).
func (d Date) shift(years int, months int, days int) Date {
	if !d.valid {
		return d
	}
	t := d.t
	if months += years * 12; months != 0 {
		t = addMonthsClamped(t, months)
	}
	if days != 0 {
		t = t.AddDate(0, 0, days)
	}
	return d.withTime(t)
}

func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, dd := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first.Month(), first.Year()); dd > last {
		dd = last
	}
	h, mi, s := t.Clock()
	return time.Date(first.Year(), first.Month(), dd, h, mi, s, t.Nanosecond(), t.Location())
}

// Shift by calendar fields, negative values go backwards.
func (d Date) AddDate(years int, months int, days int) Date {
	return d.shift(years, months, days)
}

func (d Date) NextDays(days int) Date {
	return d.shift(0, 0, days)
}

func (d Date) NextDay() Date {
	return d.NextDays(1)
}

func (d Date) Tomorrow() Date {
	return d.NextDay()
}

func (d Date) PreviousDays(days int) Date {
	return d.shift(0, 0, -days)
}

func (d Date) PreviousDay() Date {
	return d.PreviousDays(1)
}

func (d Date) Yesterday() Date {
	return d.PreviousDay()
}

func (d Date) NextWeeks(weeks int) Date {
	return d.shift(0, 0, 7*weeks)
}

func (d Date) NextWeek() Date {
	return d.NextWeeks(1)
}

func (d Date) PreviousWeeks(weeks int) Date {
	return d.shift(0, 0, -7*weeks)
}

func (d Date) PreviousWeek() Date {
	return d.PreviousWeeks(1)
}

func (d Date) NextMonths(months int) Date {
	return d.shift(0, months, 0)
}

func (d Date) NextMonth() Date {
	return d.NextMonths(1)
}

func (d Date) PreviousMonths(months int) Date {
	return d.shift(0, -months, 0)
}

func (d Date) PreviousMonth() Date {
	return d.PreviousMonths(1)
}

func (d Date) NextYears(years int) Date {
	return d.shift(years, 0, 0)
}

func (d Date) NextYear() Date {
	return d.NextYears(1)
}

func (d Date) PreviousYears(years int) Date {
	return d.shift(-years, 0, 0)
}

func (d Date) PreviousYear() Date {
	return d.PreviousYears(1)
}
