// Package civil implements calendar-day arithmetic in the fixed UTC+7 offset
// used by every school the bot serves.
//
// A Date never carries a time of day. Converting it to an instant is a
// constant shift (midnight local minus seven hours), so the result does not
// depend on the host timezone database.
package civil

import (
	"fmt"
	"time"
)

// Offset is the distance between the civil clock and UTC.
const Offset = 7 * time.Hour

// Zone is the fixed civil zone. It has no daylight-saving transitions.
var Zone = time.FixedZone("UTC+7", int(Offset/time.Second))

// NowFunc is the wall clock used by Today.
var NowFunc = time.Now // mockable

const layout = "2006-01-02"

// Date is a calendar day in the civil offset.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the civil day that contains t.
func DateOf(t time.Time) Date {
	y, m, d := t.In(Zone).Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current civil date regardless of the process timezone.
func Today() Date {
	return DateOf(NowFunc())
}

// Parse reads a YYYY-MM-DD date.
func Parse(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid civil date %q: %w", s, err)
	}
	return fromUTC(t), nil
}

func fromUTC(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) midnightUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns the date n days later, rolling over months and years.
func (d Date) AddDays(n int) Date {
	return fromUTC(d.midnightUTC().AddDate(0, 0, n))
}

// DaysSince returns the number of days from o to d.
func (d Date) DaysSince(o Date) int {
	return int(d.midnightUTC().Sub(o.midnightUTC()) / (24 * time.Hour))
}

func (d Date) Before(o Date) bool { return d.DaysSince(o) < 0 }
func (d Date) After(o Date) bool { return d.DaysSince(o) > 0 }

func (d Date) Weekday() time.Weekday {
	return d.midnightUTC().Weekday()
}

// WeekdayIndex is the position of the date inside its week, Monday first.
func (d Date) WeekdayIndex() DayOffset {
	return DayOffset((int(d.Weekday()) + 6) % 7)
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func (d Date) ISOWeekday() int {
	return int(d.WeekdayIndex()) + 1
}

// Instant is midnight of the date in the civil offset, as a UTC instant.
func (d Date) Instant() time.Time {
	return d.midnightUTC().Add(-Offset)
}

// At returns the instant of the given civil wall-clock time on d.
func (d Date) At(hour, minute int) time.Time {
	return d.Instant().Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
