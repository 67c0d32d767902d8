package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidClock = errors.New("invalid time of day")

// Clock is a local wall-clock time of day stored as the offset from midnight.
type Clock time.Duration

func NewClock(hour, minute int) Clock {
	return Clock(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// ParseClock accepts HH:MM or HH:MM:SS.
func ParseClock(v string) (Clock, error) {
	v = strings.TrimSpace(v)

	layout := "15:04"
	if strings.Count(v, ":") == 2 {
		layout = time.TimeOnly
	}

	t, err := time.Parse(layout, v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}

	hour, minute, second := t.Clock()
	d := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second

	return Clock(d), nil
}

func MustParseClock(v string) Clock {
	c, err := ParseClock(v)
	if err != nil {
		panic(err)
	}

	return c
}

func (c Clock) Clock() (int, int, int) {
	d := time.Duration(c).Truncate(time.Second)
	hour := d / time.Hour
	d %= time.Hour

	minute := d / time.Minute
	d %= time.Minute

	second := d / time.Second

	return int(hour), int(minute), int(second)
}

// At combines the clock with a date. No zone conversion happens: UTC only serves as a
// neutral frame for comparing wall-clock instants.
func (c Clock) At(d Date) time.Time {
	hour, minute, second := c.Clock()
	return time.Date(d.Year, d.Month, d.Day, hour, minute, second, 0, time.UTC)
}

func (c Clock) Before(other Clock) bool {
	return c < other
}

// String renders HH:MM, or HH:MM:SS when seconds are set.
func (c Clock) String() string {
	hour, minute, second := c.Clock()
	if second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func (c *Clock) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseClock(string(text))

	return err
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
