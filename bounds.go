// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package exceldate

const (
	// EpochYear is the first supported year. Excel day 1 is
	// 1900-01-01.
	EpochYear = 1900

	// MaxYear is the last supported year. It contains MaxDay.
	MaxYear = 5881510

	// maxYearMonth and maxYearDay bound the dates of MaxYear so
	// that no serial exceeds MaxDay.
	maxYearMonth = 7
	maxYearDay   = 10

	// Invalid is returned by conversions that reject their input.
	Invalid Day = -1

	// MaxDay is the serial of 5881510-07-10, the largest date this
	// package can represent.
	MaxDay Day = 1<<31 - 1

	// MaxExcelDay is the serial of 9999-12-31, the largest date
	// Excel itself accepts. Conversions keep working beyond it, up
	// to MaxDay.
	MaxExcelDay Day = 2958465
)

// pastMaxDate reports whether a month/day combination in MaxYear
// falls after MaxDay.
func pastMaxDate(month, day int) bool {
	return month > maxYearMonth || (month == maxYearMonth && day > maxYearDay)
}

// IsValid reports whether the date is strictly a valid calendar date,
// considering the days of each month and leap years.
//
// Special remarks:
//
//   - 1900-01-00 (day 0) is not valid.
//   - 1900-02-29 (day 60), though not a real day, is considered
//     valid for backward compatibility with Lotus 1-2-3.
//
// IsValid is stricter than Day: it does not tolerate overlong days of
// the month, so 2020-02-31 is invalid here even though Day translates
// it (as 2020-03-02).
func (d Date) IsValid() bool {
	if d.Year < EpochYear || d.Year > MaxYear ||
		d.Month < 1 || d.Month > 12 ||
		d.Day < 1 {
		return false
	}

	if d.Year == MaxYear && pastMaxDate(d.Month, d.Day) {
		return false
	}

	if d.Day <= monthDays[d.Month-1] {
		return true
	}

	return d.Month == 2 && d.Day == 29 &&
		(isLeapYear(d.Year) || d.Year == EpochYear) // Embrace the Lotus bug
}
