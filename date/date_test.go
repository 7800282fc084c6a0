package date

import (
	"errors"
	"os"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/curtisnewbie/chrono/config"
	"github.com/curtisnewbie/chrono/util/errs"
)

func TestMain(m *testing.M) {
	config.SetProp(config.PROP_TIMEZONE, "UTC")
	os.Exit(m.Run())
}

func mustYMD(t *testing.T, d Date) (int, int, int) {
	t.Helper()
	y, err := d.Year()
	if err != nil {
		t.Fatal(err)
	}
	m, err := d.Month()
	if err != nil {
		t.Fatal(err)
	}
	dd, err := d.Day()
	if err != nil {
		t.Fatal(err)
	}
	return y, m, dd
}

func assertYMD(t *testing.T, d Date, year int, month int, day int) {
	t.Helper()
	y, m, dd := mustYMD(t, d)
	if y != year || m != month || dd != day {
		t.Fatalf("expected %04d-%02d-%02d, actual: %04d-%02d-%02d", year, month, day, y, m, dd)
	}
}

func TestOfRoundTrip(t *testing.T) {
	for y := 1999; y <= 2025; y += 13 {
		for m := 1; m <= 12; m++ {
			for _, dd := range []int{1, 15, 28} {
				assertYMD(t, Of(y, m, dd), y, m, dd)
			}
		}
	}

	d := OfTime(2024, 3, 15, 13, 45, 59)
	if h, _ := d.Hour(); h != 13 {
		t.Fatalf("hour: %v", h)
	}
	if mi, _ := d.Minute(); mi != 45 {
		t.Fatalf("minute: %v", mi)
	}
	if s, _ := d.Second(); s != 59 {
		t.Fatalf("second: %v", s)
	}
}

func TestOfNormalization(t *testing.T) {
	assertYMD(t, Of(2023, 13, 1), 2024, 1, 1)
	assertYMD(t, Of(2023, 2, 29), 2023, 3, 1)
	assertYMD(t, Of(2024, 1, 0), 2023, 12, 31)
	assertYMD(t, OfTime(2024, 1, 1, 24, 0, 0), 2024, 1, 2)
}

func TestSetters(t *testing.T) {
	d := OfTime(2024, 1, 31, 10, 20, 30)
	assertYMD(t, d.WithYear(2020), 2020, 1, 31)
	assertYMD(t, d.WithMonth(4), 2024, 5, 1) // April 31st rolls over
	assertYMD(t, d.WithDay(32), 2024, 2, 1)
	assertYMD(t, d.WithDay(5), 2024, 1, 5)

	if h, _ := d.WithHour(23).Hour(); h != 23 {
		t.Fatalf("hour: %v", h)
	}
	if mi, _ := d.WithMinute(1).Minute(); mi != 1 {
		t.Fatalf("minute: %v", mi)
	}
	if s, _ := d.WithSecond(0).Second(); s != 0 {
		t.Fatalf("second: %v", s)
	}
	assertYMD(t, d.WithHour(25), 2024, 2, 1)

	// receiver is never modified
	assertYMD(t, d, 2024, 1, 31)
}

func TestAbsentInstant(t *testing.T) {
	d := Parse("2024/01/05", "yyyy-MM-dd")
	if !d.IsAbsent() {
		t.Fatal("should be absent")
	}
	if s := d.String(); s != "" {
		t.Fatalf("expected empty string, actual: %v", s)
	}
	if s := d.Format("yyyy"); s != "" {
		t.Fatalf("expected empty string, actual: %v", s)
	}

	_, err := d.Day()
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errs.ErrAbsentInstant) {
		t.Fatalf("expected ErrAbsentInstant, actual: %v", err)
	}
	t.Log(err)

	for _, f := range []func() (int, error){d.Year, d.Month, d.Hour, d.Minute, d.Second, d.Week} {
		if _, err := f(); !errors.Is(err, errs.ErrAbsentInstant) {
			t.Fatalf("expected ErrAbsentInstant, actual: %v", err)
		}
	}
	if _, err := d.Weekday(); !errors.Is(err, errs.ErrAbsentInstant) {
		t.Fatalf("expected ErrAbsentInstant, actual: %v", err)
	}
	if _, err := d.Time(); !errors.Is(err, errs.ErrAbsentInstant) {
		t.Fatalf("expected ErrAbsentInstant, actual: %v", err)
	}

	// chained operations are no-op
	chained := d.NextDay().NextMonths(3).LastDayOfMonth().SetTimeAsZero().WithDay(3).NearestNextDay(Monday)
	if !chained.IsAbsent() {
		t.Fatal("should still be absent")
	}
	if d.IsThisDay(Monday) || d.IsThisMonth(January) {
		t.Fatal("absent date should not match anything")
	}

	var zero Date
	if !zero.IsAbsent() || zero.Location() != time.UTC {
		t.Fatalf("unexpected zero value: %#v", zero)
	}
}

func TestFromReferenceOffset(t *testing.T) {
	d := FromReferenceOffset(0)
	assertYMD(t, d, 2001, 1, 1)

	d = FromReferenceOffset(86400*1.5 + 0.25)
	assertYMD(t, d, 2001, 1, 2)
	if h, _ := d.Hour(); h != 12 {
		t.Fatalf("hour: %v", h)
	}
	tt, _ := d.Time()
	if tt.Nanosecond() != 250_000_000 {
		t.Fatalf("nanos: %v", tt.Nanosecond())
	}

	assertYMD(t, FromReferenceOffset(-86400), 2000, 12, 31)
}

func TestFromUnix(t *testing.T) {
	assertYMD(t, FromUnix(0), 1970, 1, 1)
	assertYMD(t, FromUnixMilli(1704412800000), 2024, 1, 5)

	now := time.Now()
	d := FromTime(now)
	tt, err := d.Time()
	if err != nil {
		t.Fatal(err)
	}
	if !tt.Equal(now) {
		t.Fatalf("expected %v, actual: %v", now, tt)
	}
	if tt.Location() != time.UTC {
		t.Fatalf("expected UTC, actual: %v", tt.Location())
	}
}

func TestFromAny(t *testing.T) {
	d, err := FromAny("2024-01-05")
	if err != nil {
		t.Fatal(err)
	}
	assertYMD(t, d, 2024, 1, 5)

	d, err = FromAny(int64(1704412800))
	if err != nil {
		t.Fatal(err)
	}
	assertYMD(t, d, 2024, 1, 5)

	d, err = FromAny(Of(2020, 2, 29))
	if err != nil {
		t.Fatal(err)
	}
	assertYMD(t, d, 2020, 2, 29)

	d, err = FromAny(nil)
	if err != nil || !d.IsAbsent() {
		t.Fatalf("nil should be absent, %v", err)
	}

	_, err = FromAny(3.14)
	if !errors.Is(err, errs.ErrIllegalArgument) {
		t.Fatalf("expected ErrIllegalArgument, actual: %v", err)
	}
}

func TestInKeepsInstant(t *testing.T) {
	d := OfTime(2024, 1, 5, 20, 0, 0)
	tokyo, err := d.InZone("Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	if !tokyo.Equal(d) {
		t.Fatal("instant changed")
	}
	assertYMD(t, tokyo, 2024, 1, 6)
	if h, _ := tokyo.Hour(); h != 5 {
		t.Fatalf("hour: %v", h)
	}
	if tokyo.Location().String() != "Asia/Tokyo" {
		t.Fatalf("location: %v", tokyo.Location())
	}

	// decomposition follows the new location
	assertYMD(t, tokyo.SetTimeAsZero().In(time.UTC), 2024, 1, 5)
	if h, _ := tokyo.SetTimeAsZero().In(time.UTC).Hour(); h != 15 {
		t.Fatalf("hour: %v", h)
	}

	_, err = d.InZone("Mars/Olympus_Mons")
	if !errors.Is(err, errs.ErrUnknownZone) {
		t.Fatalf("expected ErrUnknownZone, actual: %v", err)
	}
}

func TestWeek(t *testing.T) {
	cases := []struct {
		y, m, d int
		week    int
	}{
		{2024, 1, 1, 1},   // Monday
		{2024, 1, 6, 1},   // Saturday
		{2024, 1, 7, 2},   // Sunday
		{2024, 3, 15, 11}, // Friday
		{2024, 12, 28, 52},
		{2024, 12, 29, 1}, // shares the week with 2025-01-01
		{2024, 12, 31, 1},
		{2023, 1, 1, 1}, // Sunday
		{2023, 12, 31, 1},
		{2022, 12, 31, 53},
	}
	for _, c := range cases {
		w, err := Of(c.y, c.m, c.d).Week()
		if err != nil {
			t.Fatal(err)
		}
		if w != c.week {
			t.Fatalf("%04d-%02d-%02d, expected week %v, actual: %v", c.y, c.m, c.d, c.week, w)
		}
	}

	y, w, err := Of(2024, 12, 30).ISOWeek()
	if err != nil {
		t.Fatal(err)
	}
	if y != 2025 || w != 1 {
		t.Fatalf("iso week: %v-%v", y, w)
	}
}

func TestUnits(t *testing.T) {
	if WeekdayOf(time.Sunday) != Sunday || Saturday.Std() != time.Saturday {
		t.Fatal("weekday mapping broken")
	}
	if int(Sunday) != 1 || int(Saturday) != 7 || int(January) != 1 || int(December) != 12 {
		t.Fatal("numeric mapping broken")
	}
	if Friday.String() != "Friday" || Weekday(9).String() != "Weekday(9)" {
		t.Fatalf("weekday string: %v %v", Friday, Weekday(9))
	}
	if March.String() != "March" || MonthOf(time.March) != March {
		t.Fatal("month mapping broken")
	}

	w, err := ParseWeekday("mon")
	if err != nil || w != Monday {
		t.Fatalf("ParseWeekday: %v %v", w, err)
	}
	w, err = ParseWeekday("SATURDAY")
	if err != nil || w != Saturday {
		t.Fatalf("ParseWeekday: %v %v", w, err)
	}
	if _, err = ParseWeekday("someday"); !errors.Is(err, errs.ErrIllegalArgument) {
		t.Fatalf("expected ErrIllegalArgument, actual: %v", err)
	}

	m, err := ParseMonth("Sep")
	if err != nil || m != September {
		t.Fatalf("ParseMonth: %v %v", m, err)
	}

	s, err := ParseStyle("Medium")
	if err != nil || s != StyleMedium || s.String() != "medium" {
		t.Fatalf("ParseStyle: %v %v", s, err)
	}
}

func TestCompare(t *testing.T) {
	a := Of(2024, 1, 5)
	b := a.NextDay()
	if !a.Before(b) || !b.After(a) || a.Equal(b) {
		t.Fatal("comparison broken")
	}
	if !b.PreviousDay().Equal(a) {
		t.Fatal("should be equal")
	}
	var absent Date
	if absent.Before(a) || absent.After(a) || absent.Equal(a) || !absent.Equal(Date{}) {
		t.Fatal("absent comparison broken")
	}
	t.Logf("%#v, %#v", a, absent)
}
