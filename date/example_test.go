package date_test

import (
	"fmt"

	"github.com/curtisnewbie/chrono/date"
	"golang.org/x/text/language"
)

func ExampleParse() {
	d := date.Parse("2024-01-05", "yyyy-MM-dd")
	fmt.Println(d)
	// Output: Friday, January 5, 2024 at 12:00:00 AM Coordinated Universal Time
}

func ExampleDate_NearestPreviousDay() {
	d := date.Of(2024, 3, 15).NearestPreviousDay(date.Monday)
	fmt.Println(d.Format(date.PatternDate))
	// Output: 2024-03-11
}

func ExampleDate_LastDayOfMonth() {
	fmt.Println(date.Of(2024, 2, 10).LastDayOfMonth().Format("d MMM yyyy"))
	fmt.Println(date.Of(2023, 2, 10).LastDayOfMonth().Format("d MMM yyyy"))
	// Output:
	// 29 Feb 2024
	// 28 Feb 2023
}

func ExampleDate_WithLocale() {
	d := date.Of(2024, 1, 5).
		WithLocale(language.German).
		WithDateStyle(date.StyleLong).
		WithTimeStyle(date.StyleNone)
	fmt.Println(d)
	// Output: 5. Januar 2024
}

func ExampleDate_Day() {
	d := date.Parse("2024/01/05", "yyyy-MM-dd")
	_, err := d.Day()
	fmt.Println(d.IsAbsent(), err != nil)
	// Output: true true
}
