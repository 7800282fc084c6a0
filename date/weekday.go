package date

// Whether the Date falls on weekday w, false if the Date has no instant.
func (d Date) IsThisDay(w Weekday) bool {
	cur, err := d.Weekday()
	return err == nil && cur == w
}

// Same as [Date.IsThisDay].
func (d Date) IsToday(w Weekday) bool {
	return d.IsThisDay(w)
}

// Whether the Date falls in month m, false if the Date has no instant.
func (d Date) IsThisMonth(m Month) bool {
	cur, err := d.Month()
	return err == nil && Month(cur) == m
}

// Most recent weekday w strictly before the Date, i.e., 1 to 7 days back.
//
// If the Date already falls on w, the same weekday of the previous week is returned.
// The Date is returned unchanged if w is not a valid weekday.
func (d Date) NearestPreviousDay(w Weekday) Date {
	cur, err := d.Weekday()
	if err != nil || !w.Valid() {
		return d
	}
	return d.PreviousDays(daysBackTo(cur, w))
}

// Next weekday w strictly after the Date, i.e., 1 to 7 days forward.
//
// If the Date already falls on w, the same weekday of the next week is returned.
// The Date is returned unchanged if w is not a valid weekday.
func (d Date) NearestNextDay(w Weekday) Date {
	cur, err := d.Weekday()
	if err != nil || !w.Valid() {
		return d
	}
	return d.NextDays(daysForwardTo(cur, w))
}

func daysBackTo(curr Weekday, w Weekday) int {
	diff := int(curr - w)
	if diff <= 0 {
		diff += 7
	}
	return diff
}

func daysForwardTo(curr Weekday, w Weekday) int {
	diff := int(w - curr)
	if diff <= 0 {
		diff += 7
	}
	return diff
}
