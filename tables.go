// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package exceldate

// tetraCenturyDays is the number of days in a 400-year Gregorian
// cycle.
const tetraCenturyDays = 400*365 +
	100 - // 1/4 of those 400 years are leap years,
	4 + // except multiples of 100, which are not,
	1 // but the multiple of 400, which is

// monthDays holds the month lengths of a non-leap year.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// monthOffsets holds the cumulative days before each month in a
// non-leap year.
var monthOffsets [12]int

// tetraCenturyOffsets holds the cumulative days before each year of
// the 400-year cycle that starts at EpochYear.
var tetraCenturyOffsets [400]int

func init() {
	for i := 1; i < 12; i++ {
		monthOffsets[i] = monthOffsets[i-1] + monthDays[i-1]
	}

	for i := 1; i < 400; i++ {
		yearDays := 365
		if isLeapYear(EpochYear + i - 1) {
			yearDays = 366
		}
		tetraCenturyOffsets[i] = tetraCenturyOffsets[i-1] + yearDays
	}
}

// isLeapYear applies the Gregorian leap-year rule. The Lotus 1-2-3
// exception for 1900 is handled by the converters, not here.
func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
