package date

import "testing"

func TestLastDayOfMonth(t *testing.T) {
	if d, _ := Of(2024, 2, 1).LastDayOfMonth().Day(); d != 29 {
		t.Fatalf("expected 29, actual: %v", d)
	}
	if d, _ := Of(2023, 2, 1).LastDayOfMonth().Day(); d != 28 {
		t.Fatalf("expected 28, actual: %v", d)
	}
	assertYMD(t, Of(2024, 12, 10).LastDayOfMonth(), 2024, 12, 31)
	assertYMD(t, Of(2100, 2, 10).LastDayOfMonth(), 2100, 2, 28)
	assertYMD(t, Of(2000, 2, 10).LastDayOfMonth(), 2000, 2, 29)
}

func TestFirstThenLastDayOfMonth(t *testing.T) {
	for _, y := range []int{2023, 2024} {
		for m := 1; m <= 12; m++ {
			d := Of(y, m, 17).FirstDayOfMonth()
			assertYMD(t, d, y, m, 1)

			last, err := d.LastDayOfMonth().Day()
			if err != nil {
				t.Fatal(err)
			}
			tt, _ := d.Time()
			if expected := daysIn(tt.Month(), y); last != expected {
				t.Fatalf("%v-%v expected %v days, actual: %v", y, m, expected, last)
			}
		}
	}
}

func TestSetTimeAsZero(t *testing.T) {
	d := OfTime(2024, 3, 15, 23, 59, 58).SetTimeAsZero()
	assertYMD(t, d, 2024, 3, 15)
	h, _ := d.Hour()
	mi, _ := d.Minute()
	s, _ := d.Second()
	if h != 0 || mi != 0 || s != 0 {
		t.Fatalf("expected 00:00:00, actual: %02d:%02d:%02d", h, mi, s)
	}
	if !d.Equal(OfTime(2024, 3, 15, 5, 6, 7).StartOfDay()) {
		t.Fatal("StartOfDay should equal SetTimeAsZero")
	}

	tt, _ := FromUnixMilli(1704412800123).SetTimeAsZero().Time()
	if tt.Nanosecond() != 0 {
		t.Fatalf("nanos: %v", tt.Nanosecond())
	}
}

func TestEndOfDay(t *testing.T) {
	d := Of(2024, 3, 15).EndOfDay()
	assertYMD(t, d, 2024, 3, 15)
	if !d.NextDays(0).Before(Of(2024, 3, 16)) {
		t.Fatal("end of day should be before next day")
	}
	if s := d.Format("HH:mm:ss.SSS"); s != "23:59:59.999" {
		t.Fatalf("actual: %v", s)
	}
}

func TestMonthOfYear(t *testing.T) {
	d := OfTime(2024, 7, 31, 10, 0, 0)
	assertYMD(t, d.FirstMonthOfYear(), 2024, 1, 31)
	assertYMD(t, d.LastMonthOfYear(), 2024, 12, 31)
	if h, _ := d.LastMonthOfYear().Hour(); h != 10 {
		t.Fatalf("hour: %v", h)
	}

	assertYMD(t, d.FirstDayOfYear(), 2024, 1, 1)
	assertYMD(t, d.LastDayOfYear(), 2024, 12, 31)
	if !d.FirstDayOfYear().IsThisMonth(January) {
		t.Fatal("should be January")
	}
}
