package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownWeekday = errors.New("unknown weekday")

// Weekday is a day of the week using the fixed Sunday=0 ordinal convention.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	Sunday:    "sunday",
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
}

// Weekdays lists every weekday in ordinal order.
func Weekdays() []Weekday {
	return []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

func (wd Weekday) Valid() bool {
	return wd >= Sunday && wd <= Saturday
}

// String returns the lower-case weekday name used in schedule data and queries.
func (wd Weekday) String() string {
	if !wd.Valid() {
		return fmt.Sprintf("weekday(%d)", int(wd))
	}
	return weekdayNames[wd]
}

// ParseWeekday accepts a weekday name in any case, surrounding whitespace ignored.
func ParseWeekday(s string) (Weekday, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for i, name := range weekdayNames {
		if name == token {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// WeekdayOf returns the weekday of a calendar date, indexed in UTC.
func WeekdayOf(d Date) Weekday {
	return Weekday(d.Time().Weekday())
}
