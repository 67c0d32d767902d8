package schedule

import (
	"fmt"
	"strings"
)

// ServiceDays is the recurring weekly calendar of a leg, one bit per Weekday.
type ServiceDays uint8

const allServiceDays ServiceDays = 1<<7 - 1

func NewServiceDays(days ...Weekday) ServiceDays {
	var sd ServiceDays
	for _, d := range days {
		sd = sd.With(d)
	}
	return sd
}

// ParseServiceDays parses a comma-joined weekday list such as "monday,friday".
// Empty tokens are skipped, unknown tokens are rejected.
func ParseServiceDays(s string) (ServiceDays, error) {
	var sd ServiceDays
	for _, token := range strings.Split(s, ",") {
		if strings.TrimSpace(token) == "" {
			continue
		}

		wd, err := ParseWeekday(token)
		if err != nil {
			return 0, fmt.Errorf("parse service days %q: %w", s, err)
		}
		sd = sd.With(wd)
	}
	return sd, nil
}

func (sd ServiceDays) With(wd Weekday) ServiceDays {
	if !wd.Valid() {
		return sd
	}
	return sd | 1<<uint(wd)
}

func (sd ServiceDays) Contains(wd Weekday) bool {
	if !wd.Valid() {
		return false
	}
	return sd&(1<<uint(wd)) != 0
}

// Intersect keeps only the weekdays served by both calendars.
func (sd ServiceDays) Intersect(other ServiceDays) ServiceDays {
	return sd & other & allServiceDays
}

func (sd ServiceDays) Empty() bool {
	return sd&allServiceDays == 0
}

func (sd ServiceDays) Days() []Weekday {
	days := make([]Weekday, 0, 7)
	for _, wd := range Weekdays() {
		if sd.Contains(wd) {
			days = append(days, wd)
		}
	}
	return days
}

// String renders the canonical comma-joined form, Sunday first.
func (sd ServiceDays) String() string {
	days := sd.Days()
	names := make([]string, len(days))
	for i, wd := range days {
		names[i] = wd.String()
	}
	return strings.Join(names, ",")
}
