package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date represents a UTC calendar date, i.e. a year, month and day without any
// time of day.
type Date struct {
	Year  int
	Month int
	Day   int
}

// FromTime returns the UTC calendar date of the given time.
func FromTime(t time.Time) Date {
	t = t.UTC()
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Prev returns the previous date.
func (d Date) Prev() Date {
	if d.Day == 1 {
		if d.Month == 1 {
			d.Year--
			d.Month = 12
			d.Day = 31
		} else {
			d.Month--
			d.Day = d.GetLastOfMonth().Day
		}
	} else {
		d.Day--
	}
	return d
}

// Next returns the next date.
func (d Date) Next() Date {
	if d == d.GetLastOfMonth() {
		d.Day = 1
		if d.Month == 12 {
			d.Month = 1
			d.Year++
		} else {
			d.Month++
		}
	} else {
		d.Day++
	}
	return d
}

// ToString returns the date as a string in the format "YYYY-MM-DD".
func (d Date) ToString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Valid returns whether the date is valid.
// A date such as the 31st of February is invalid, for example.
func (d Date) Valid() bool {
	if d.Month < 1 ||
		d.Month > 12 {
		return false
	}

	if d.Day < 1 ||
		d.Day > d.GetLastOfMonth().Day {
		return false
	}

	return true
}

var dateRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// FromString creates a date from a string in the format "YYYY-MM-DD".
func FromString(s string) (Date, error) {
	parsed := dateRegex.FindStringSubmatch(s)
	if len(parsed) != 4 {
		return Date{}, fmt.Errorf("not enough int matches in day string '%s'", s)
	}

	year, errY := strconv.Atoi(parsed[1])
	month, errM := strconv.Atoi(parsed[2])
	day, errD := strconv.Atoi(parsed[3])
	if errY != nil || errM != nil || errD != nil {
		return Date{}, fmt.Errorf("could not convert string '%s' (assuming YYYY-MM-DD format) to integers", s)
	}

	result := Date{Year: year, Month: month, Day: day}
	if !result.Valid() {
		return Date{}, fmt.Errorf("day %s (from string '%s') not valid", result.ToString(), s)
	}
	return result, nil
}

func lastDaysOfMonth() map[int]int {
	return map[int]int{
		1:  31,
		2:  28,
		3:  31,
		4:  30,
		5:  31,
		6:  30,
		7:  31,
		8:  31,
		9:  30,
		10: 31,
		11: 30,
		12: 31,
	}
}

// IsAfter returns whether a date A is after a date B.
func (d Date) IsAfter(other Date) bool {
	switch {
	case d.Year != other.Year:
		return d.Year > other.Year
	case d.Month != other.Month:
		return d.Month > other.Month
	default:
		return d.Day > other.Day
	}
}

// IsBefore returns whether a date A is before a date B.
func (d Date) IsBefore(other Date) bool {
	return other.IsAfter(d)
}

// GetLastOfMonth returns the last date of the month of the receiver.
func (d Date) GetLastOfMonth() Date {
	var lastDay int

	switch {
	case d.Month == 2 && d.isLeapYear():
		lastDay = 29
	default:
		lastDay = lastDaysOfMonth()[d.Month]
	}

	return Date{Year: d.Year, Month: d.Month, Day: lastDay}
}

func (d Date) isLeapYear() bool {
	return d.Year%4 == 0 && (!(d.Year%100 == 0) || d.Year%400 == 0)
}

// DayOfYear returns the ordinal day of the receiver within its year, starting
// at 1 for the first of January.
func (d Date) DayOfYear() int {
	ordinal := d.Day
	for m := 1; m < d.Month; m++ {
		ordinal += Date{Year: d.Year, Month: m}.GetLastOfMonth().Day
	}
	return ordinal
}

// JulianDayNumber returns the Julian Day Number of the receiver, following
// the integer algorithm for the proleptic Gregorian calendar.
//
// Note that the JDN of a date refers to noon of that date, so it is 0.5
// greater than the (fractional) Julian Day at 00:00 UTC.
func (d Date) JulianDayNumber() int {
	a := floorDiv(14-d.Month, 12)
	y := d.Year + 4800 - a
	m := d.Month + 12*a - 3
	return d.Day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// floorDiv divides, rounding towards negative infinity (unlike Go's `/`,
// which truncates towards zero).
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Is returns whether the receiver is the same date as the given time (in UTC).
func (d Date) Is(t time.Time) bool {
	tYear, tMonth, tDay := t.UTC().Date()
	return tYear == d.Year && int(tMonth) == d.Month && tDay == d.Day
}

// ToGotime returns the date as a time.Time at midnight UTC (at the start of
// the day).
func (d Date) ToGotime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// At returns the time.Time of the given hour and minute on the receiver date,
// in UTC.
func (d Date) At(hour, minute int) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, hour, minute, 0, 0, time.UTC)
}
