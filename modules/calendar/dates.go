package calendar

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Date is a calendar date with no time of day, in the local zone. The year is
// unbounded in both directions.
type Date struct {
	Year  int
	Month datetime.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DateOf returns the local calendar date of t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: datetime.Month(m), Day: d}
}

func firstOfMonth(d Date) Date {
	d.Day = 1
	return d
}

// addMonths moves the (month, year) pair of d by n months and returns day 1
// of the resulting month. The month index is kept in [0,11] and the year
// absorbs the overflow.
func addMonths(d Date, n int) Date {
	month := int(d.Month) - 1 + n
	year := d.Year + month/12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}
	return Date{Year: year, Month: datetime.Month(month + 1), Day: 1}
}

// nextDay returns the following day within the same month; ok is false when
// d is the last day of its month.
func nextDay(d Date) (next Date, ok bool) {
	if d.Day+1 > int(datetime.DaysInMonth(d.Year, d.Month)) {
		return d, false
	}
	d.Day++
	return d, true
}

func timeOf(d Date) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 12, 0, 0, 0, time.UTC)
}

// weekdayColumn returns 0=Mon..6=Sun.
func weekdayColumn(d Date) int {
	col := (int(timeOf(d).Weekday()) + 6) % 7
	if col < 0 || col > 6 {
		invariant("weekday", col)
	}
	return col
}

func isoWeek(d Date) int {
	_, wk := timeOf(d).ISOWeek()
	return wk
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func monthName(m datetime.Month) string {
	if m < 1 || m > 12 {
		invariant("month", int(m))
	}
	return monthNames[m-1]
}

// weekdayLabels is the header row as the widget has always drawn it: SUN
// precedes SAT.
var weekdayLabels = [7]string{"MON", "TUE", "WED", "THU", "FRI", "SUN", "SAT"}
