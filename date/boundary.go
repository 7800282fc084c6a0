package date

// At 00:00:00.000000000, the date is preserved.
func (d Date) SetTimeAsZero() Date {
	return d.recompose(func(f *fields) {
		f.hour, f.minute, f.second, f.nsec = 0, 0, 0, 0
	})
}

// Same as [Date.SetTimeAsZero].
func (d Date) StartOfDay() Date {
	return d.SetTimeAsZero()
}

// At 23:59:59.999999999.
func (d Date) EndOfDay() Date {
	return d.recompose(func(f *fields) {
		f.hour, f.minute, f.second, f.nsec = 23, 59, 59, 999_999_999
	})
}

// Day of month set to 1, time of day is preserved.
func (d Date) FirstDayOfMonth() Date {
	return d.WithDay(1)
}

// Last day of the month, time of day is preserved.
func (d Date) LastDayOfMonth() Date {
	return d.FirstDayOfMonth().NextMonth().PreviousDay()
}

// Month set to January, day and time of day are preserved.
func (d Date) FirstMonthOfYear() Date {
	return d.WithMonth(int(January))
}

// Month set to December, day and time of day are preserved.
func (d Date) LastMonthOfYear() Date {
	return d.WithMonth(int(December))
}

// January 1st, time of day is preserved.
func (d Date) FirstDayOfYear() Date {
	return d.recompose(func(f *fields) { f.month, f.day = int(January), 1 })
}

// December 31st, time of day is preserved.
func (d Date) LastDayOfYear() Date {
	return d.recompose(func(f *fields) { f.month, f.day = int(December), 31 })
}
