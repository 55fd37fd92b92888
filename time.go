// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package exceldate

import "time"

// Weekday returns the day of the week in Excel's reckoning, where
// day 1 (1900-01-01) is a Sunday. Because of the Lotus bug, weekdays
// before 1900-03-01 are shifted one position from the historical
// calendar; from day 61 on they agree with it.
func (day Day) Weekday() time.Weekday {
	return time.Weekday(((int(day)-1)%7 + 7) % 7)
}

// Time returns the midnight UTC time.Time of the day's calendar
// date. It reports false for day numbers whose date is not a valid
// calendar date, including the sentinel day 0 and the fictitious
// 1900-02-29 (day 60), which time.Time cannot represent.
func (day Day) Time() (time.Time, bool) {
	d := day.Date()

	if !d.IsValid() || (d.Year == EpochYear && d.Month == 2 && d.Day == 29) {
		return time.Time{}, false
	}

	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), true
}

// DayFromTime translates the civil date of t, in t's location, to an
// Excel day number. It returns Invalid for dates before 1900.
func DayFromTime(t time.Time) Day {
	year, month, day := t.Date()
	return Date{Year: year, Month: int(month), Day: day}.Serial()
}
