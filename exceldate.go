// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package exceldate translates calendar dates to and from Excel day
// numbers — the count of days since the start of year 1900 — using
// plain integer arithmetic over a few lookup tables.
//
// The tables are initialized once at package load and never modified,
// so the package is safe for unsynchronized concurrent use.
//
// Notes about Excel day numbers:
//
//   - 1900-01-00 is translated as 0. It is the "no date" sentinel and
//     is not a valid calendar date.
//   - 1900-01-01 is day 1.
//   - 1900-02-29, though not a real day, is considered valid for
//     backward compatibility with Lotus 1-2-3. It is day 60.
//   - 1900-03-01 is day 61.
//   - 9999-12-31 is day 2958465, the maximum date for Excel. This
//     package translates correctly well beyond that, up to...
//   - 5881510-07-10, which is day 2147483647, the maximum value of
//     the 32-bit serial.
package exceldate

// Date represents a date and only a date. No hours, minutes, seconds
// or time zone.
//
// A Date is not validated on construction. The Serial method tolerates
// some malformed dates (see its comment); use IsValid for a strict
// calendar check. To store a lot of dates, or use them as map keys,
// store the Day serial instead.
type Date struct {
	// Year number. Valid years range from 1900 to 5881510.
	Year int

	// Month of the year, from 1 to 12.
	Month int

	// Day of the month, from 1 to 31.
	Day int
}

// Day is an Excel day number: a signed 32-bit count of days since
// 1900-01-00. The zero value is the "no date" sentinel; Invalid (-1)
// marks a failed conversion.
type Day int32

// FromYearMonthDay constructs a Date from its fields in big-endian
// order. It performs no validation.
func FromYearMonthDay(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromDayMonthYear constructs a Date from its fields in little-endian
// order. The two constructors exist to mitigate the risk of messing
// up the argument order.
func FromDayMonthYear(day, month, year int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// NoDate returns the sentinel date 1900-01-00, which is Excel day 0.
func NoDate() Date {
	return Date{Year: EpochYear, Month: 1, Day: 0}
}
