package inventory

import (
	"errors"
	"time"
)

const dayLayout = "2006-01-02"

var (
	ErrInvalidDay  = errors.New("invalid day format, expected YYYY-MM-DD")
	ErrInvalidSpan = errors.New("from date must not be after to date")
)

// Day is a calendar date with no time component, normalized to UTC midnight.
type Day struct {
	t time.Time
}

func ParseDay(value string) (Day, error) {
	t, err := time.Parse(dayLayout, value)
	if err != nil {
		return Day{}, ErrInvalidDay
	}
	return Day{t: t}, nil
}

func NewDay(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Day) String() string {
	return d.t.Format(dayLayout)
}

func (d Day) Time() time.Time {
	return d.t
}

func (d Day) Next() Day {
	return Day{t: d.t.AddDate(0, 0, 1)}
}

func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

func (d Day) After(other Day) bool {
	return d.t.After(other.t)
}

func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// DaySpan is an inclusive range of days.
type DaySpan struct {
	from Day
	to   Day
}

func NewDaySpan(from, to Day) (DaySpan, error) {
	if from.After(to) {
		return DaySpan{}, ErrInvalidSpan
	}
	return DaySpan{from: from, to: to}, nil
}

func (s DaySpan) From() Day {
	return s.from
}

func (s DaySpan) To() Day {
	return s.to
}

func (s DaySpan) Contains(d Day) bool {
	return !d.Before(s.from) && !d.After(s.to)
}

// Intersects reports whether two inclusive spans share at least one day:
// s.from <= other.to AND s.to >= other.from.
func (s DaySpan) Intersects(other DaySpan) bool {
	return !s.from.After(other.to) && !s.to.Before(other.from)
}

func (s DaySpan) Days() []Day {
	var days []Day
	for d := s.from; !d.After(s.to); d = d.Next() {
		days = append(days, d)
	}
	return days
}
