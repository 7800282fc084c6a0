package date

import "testing"

func TestNearestPreviousDay(t *testing.T) {
	friday := Of(2024, 3, 15)
	if !friday.IsThisDay(Friday) || !friday.IsToday(Friday) {
		t.Fatal("2024-03-15 should be a Friday")
	}
	assertYMD(t, friday.NearestPreviousDay(Monday), 2024, 3, 11)
	assertYMD(t, friday.NearestPreviousDay(Thursday), 2024, 3, 14)
	assertYMD(t, friday.NearestPreviousDay(Saturday), 2024, 3, 9)
	assertYMD(t, friday.NearestPreviousDay(Friday), 2024, 3, 8)
}

func TestNearestNextDay(t *testing.T) {
	friday := Of(2024, 3, 15)
	assertYMD(t, friday.NearestNextDay(Monday), 2024, 3, 18)
	assertYMD(t, friday.NearestNextDay(Saturday), 2024, 3, 16)
	assertYMD(t, friday.NearestNextDay(Thursday), 2024, 3, 21)
	assertYMD(t, friday.NearestNextDay(Friday), 2024, 3, 22)
}

func TestNearestDayInvalidWeekday(t *testing.T) {
	friday := Of(2024, 3, 15)
	for _, w := range []Weekday{Weekday(0), Weekday(12), Weekday(-1)} {
		assertYMD(t, friday.NearestPreviousDay(w), 2024, 3, 15)
		assertYMD(t, friday.NearestNextDay(w), 2024, 3, 15)
	}
}

func TestNearestDayAllCombinations(t *testing.T) {
	sunday := Of(2024, 3, 10)
	for i := 0; i < 7; i++ {
		d := sunday.NextDays(i)
		for w := Sunday; w <= Saturday; w++ {
			prev := d.NearestPreviousDay(w)
			if !prev.IsThisDay(w) {
				t.Fatalf("%v NearestPreviousDay(%v) landed on %v", d.Format("EEE yyyy-MM-dd"), w, prev.Format("EEE"))
			}
			if !prev.Before(d) || prev.NextWeek().Before(d) {
				t.Fatalf("%v NearestPreviousDay(%v) = %v not within the previous 7 days", d.Format(PatternDate), w, prev.Format(PatternDate))
			}

			next := d.NearestNextDay(w)
			if !next.IsThisDay(w) {
				t.Fatalf("%v NearestNextDay(%v) landed on %v", d.Format("EEE yyyy-MM-dd"), w, next.Format("EEE"))
			}
			if !next.After(d) || next.PreviousWeek().After(d) {
				t.Fatalf("%v NearestNextDay(%v) = %v not within the next 7 days", d.Format(PatternDate), w, next.Format(PatternDate))
			}
		}
	}
}

func TestIsThisMonth(t *testing.T) {
	d := Of(2024, 2, 29)
	if !d.IsThisMonth(February) || d.IsThisMonth(March) {
		t.Fatal("2024-02-29 should be in February")
	}
	if !d.NextDay().IsThisMonth(March) {
		t.Fatal("2024-03-01 should be in March")
	}
}
