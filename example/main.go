package main

import (
	"fmt"

	exceldate "github.com/complex-gh/exceldate_go"
)

func main() {
	// Translate a calendar date to its Excel day number
	date := exceldate.FromYearMonthDay(2020, 2, 29)
	day := date.Serial()
	fmt.Printf("2020-02-29 is Excel day %d, a %s\n\n", day, day.Weekday())

	// Translate a few day numbers back
	for _, serial := range []exceldate.Day{0, 1, 59, 60, 61, exceldate.MaxExcelDay, exceldate.MaxDay} {
		fmt.Printf("day %10d = %s\n", serial, serial)
	}
	fmt.Println()

	// Parse a date string, with a default for unparsable input
	fmt.Printf("\"1999-12-31\" parses as day %d\n", exceldate.DayFromString("1999-12-31", -1))
	fmt.Printf("\"foo\" defaults to %d\n", exceldate.DayFromString("foo", -1))
}
