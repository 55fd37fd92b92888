// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package exceldate

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// datePattern matches digits-dashes-digits-dashes-digits with
// arbitrary digit counts. Any further validation is left to the
// converter.
var datePattern = regexp.MustCompile(`^(\d+)-(\d+)-(\d+)$`)

// normalizeLazy converts a string to the composed compatibility form
// (NFKC), so that width variants of digits and dashes match the
// pattern. Pure-ASCII strings are returned as is.
func normalizeLazy(str string) string {
	for _, r := range str {
		if r > 127 {
			return norm.NFKC.String(str)
		}
	}
	return str
}

// ParseDay parses a date string in yyyy-MM-dd format and translates
// it to an Excel day number. The second return value is false if the
// string does not match the format, a field overflows, or the date is
// out of range.
func ParseDay(str string) (Day, bool) {
	m := datePattern.FindStringSubmatch(normalizeLazy(str))
	if m == nil {
		return 0, false
	}

	year, err1 := strconv.Atoi(m[1])
	month, err2 := strconv.Atoi(m[2])
	dayOfMonth, err3 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}

	day := FromYearMonthDay(year, month, dayOfMonth).Serial()
	if day < 0 {
		return 0, false
	}

	return day, true
}

// DayFromString is a convenience wrapper for ParseDay that returns
// defaultValue when the parsing fails or the date is invalid.
func DayFromString(str string, defaultValue Day) Day {
	if day, ok := ParseDay(str); ok {
		return day
	}
	return defaultValue
}

// String formats the day's calendar date as yyyy-MM-dd, with the year
// zero-padded to at least 4 digits. Day numbers below 1 format as the
// sentinel "1900-01-00".
func (day Day) String() string {
	d := day.Date()
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
