// Package calendar counts Monday to Friday working days. Weekends are the
// only non-working days; public holidays are not modelled.
package calendar

import "time"

// MonthWindow returns the first instant and the last instant of the given month in UTC.
// The end is 23:59:59.999999999 on the last day, so date-only values on that day fall inside.
func MonthWindow(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// daysInMonth returns the number of days in month (1-12) of year.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWorkingDay reports whether t falls on Monday to Friday.
func IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WorkingDaysInMonth counts the working days of month (1-12) in year.
func WorkingDaysInMonth(year, month int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return countWorkingDays(first, first.AddDate(0, 0, daysInMonth(year, month)-1))
}

// WorkingDaysInRange counts the working days in the intersection of
// [rangeStart, rangeEnd] and [windowStart, windowEnd], both ends inclusive.
// Values are compared per calendar day. An empty intersection yields 0.
func WorkingDaysInRange(rangeStart, rangeEnd, windowStart, windowEnd time.Time) int {
	start := later(dateOf(rangeStart), dateOf(windowStart))
	end := earlier(dateOf(rangeEnd), dateOf(windowEnd))

	if start.After(end) {
		return 0
	}
	return countWorkingDays(start, end)
}

// countWorkingDays expects both arguments to be midnight UTC with from <= to.
func countWorkingDays(from, to time.Time) int {
	days := 0
	for current := from; !current.After(to); current = current.AddDate(0, 0, 1) {
		if IsWorkingDay(current) {
			days++
		}
	}
	return days
}

// dateOf drops the time of day, keeping the calendar date as seen in t's own location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
