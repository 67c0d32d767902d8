package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar date without a time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{year, month, day}
}

// ParseDate accepts YYYY-MM-DD. A full RFC 3339 timestamp is reduced to its UTC calendar date.
func ParseDate(v string) (Date, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return NewDate(t), nil
	}

	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, v)
	}

	return NewDate(t.UTC()), nil
}

func MustParseDate(v string) Date {
	d, err := ParseDate(v)
	if err != nil {
		panic(err)
	}

	return d
}

// Time returns midnight of the date in UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return NewDate(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() Weekday {
	return WeekdayOf(d)
}

func (d Date) Compare(other Date) int {
	return d.Time().Compare(other.Time())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(time.DateOnly)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	var err error
	*d, err = ParseDate(v)

	return err
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
