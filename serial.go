// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package exceldate

// Serial translates the calendar date to its Excel day number.
//
// The translation is slightly tolerant with some forms of invalid
// dates: the day of the month is only checked against the range 1 to
// 31, so an overlong day rolls into the following month. 2020-02-31,
// for instance, is translated as 43892, which corresponds to
// 2020-03-02.
//
// The special date 1900-01-00, though not strictly valid, is
// translated as day 0. Any other out-of-range input yields Invalid.
func (d Date) Serial() Day {
	year, month, day := d.Year, d.Month, d.Day

	if year == EpochYear && month == 1 && day == 0 {
		return 0
	}

	if year < EpochYear || year > MaxYear ||
		month < 1 || month > 12 ||
		day < 1 || day > 31 {
		return Invalid
	}

	if year == MaxYear && pastMaxDate(month, day) {
		return Invalid
	}

	leap := isLeapYear(year)

	month--
	day--
	year -= EpochYear

	absDay := (year/400)*tetraCenturyDays + tetraCenturyOffsets[year%400]
	absDay += monthOffsets[month] + day

	if leap && month > 1 {
		absDay++
	}

	if year > 0 || month > 1 { // Embrace the Lotus bug
		absDay++
	}

	return Day(absDay + 1)
}

// Date translates the Excel day number back to a calendar date.
//
// Day 0 is translated as the sentinel 1900-01-00, which is not
// strictly valid. Negative day numbers are also translated as
// 1900-01-00. Every other value maps to some well-formed date, so
// Date never fails.
func (day Day) Date() Date {
	if day < 1 {
		return NoDate()
	}

	if day <= 31 {
		return Date{Year: EpochYear, Month: 1, Day: int(day)}
	}

	// Embrace the Lotus bug: this range contains the fictitious
	// 1900-02-29, day 60.
	if day <= 60 {
		return Date{Year: EpochYear, Month: 2, Day: int(day) - 31}
	}

	// 0-based day, already accounting for the fictitious leap day.
	d := int(day) - 2

	year := (d / tetraCenturyDays) * 400
	d %= tetraCenturyDays

	tcYear := d / 366

	if tcYear < 399 && d >= tetraCenturyOffsets[tcYear+1] {
		tcYear++
	}

	year += tcYear
	d -= tetraCenturyOffsets[tcYear]

	month := 0
	leap := isLeapYear(year + EpochYear)

	if d >= 60 || !leap {
		if leap {
			d--
		}

		month = d / 31

		if month < 11 && d >= monthOffsets[month+1] {
			month++
		}

		d -= monthOffsets[month]
	} else if d >= 31 {
		month = 1
		d -= 31
	}

	return Date{Year: year + EpochYear, Month: month + 1, Day: d + 1}
}
