package civil

import "fmt"

// DaysPerWeek bounds every weekday enumeration.
const DaysPerWeek = 7

// DayOffset is the position of a weekday inside a week. Monday is 0.
type DayOffset int

const (
	Monday DayOffset = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (o DayOffset) Valid() bool {
	return o >= Monday && o <= Sunday
}

// Week is identified by its Monday. The zero value means "no week".
type Week struct {
	monday Date
}

// StartOfWeek returns the week containing d.
func StartOfWeek(d Date) Week {
	if d.IsZero() {
		return Week{}
	}
	return Week{monday: d.AddDays(-int(d.WeekdayIndex()))}
}

// ThisWeek returns the week containing the current civil date.
func ThisWeek() Week {
	return StartOfWeek(Today())
}

// ParseWeek accepts any date of the week and anchors it on Monday.
func ParseWeek(s string) (Week, error) {
	d, err := Parse(s)
	if err != nil {
		return Week{}, err
	}
	return StartOfWeek(d), nil
}

func (w Week) Monday() Date { return w.monday }
func (w Week) Sunday() Date { return w.monday.AddDays(DaysPerWeek - 1) }
func (w Week) IsZero() bool { return w.monday.IsZero() }

// Shift moves the week by delta weeks.
func (w Week) Shift(delta int) Week {
	if w.IsZero() {
		return w
	}
	return Week{monday: w.monday.AddDays(DaysPerWeek * delta)}
}

// Date returns the day at offset inside the week. An offset outside 0..6 is a
// programming error.
func (w Week) Date(offset DayOffset) Date {
	if !offset.Valid() {
		panic(fmt.Sprintf("civil: day offset %d out of range", offset))
	}
	return w.monday.AddDays(int(offset))
}

func (w Week) Days() [DaysPerWeek]Date {
	var days [DaysPerWeek]Date
	for i := range days {
		days[i] = w.monday.AddDays(i)
	}
	return days
}

// OffsetOf reports the offset of d inside the week.
func (w Week) OffsetOf(d Date) (DayOffset, bool) {
	if w.IsZero() {
		return 0, false
	}
	n := d.DaysSince(w.monday)
	if n < 0 || n >= DaysPerWeek {
		return 0, false
	}
	return DayOffset(n), true
}

func (w Week) Contains(d Date) bool {
	_, ok := w.OffsetOf(d)
	return ok
}

func (w Week) String() string {
	if w.IsZero() {
		return ""
	}
	return w.monday.String()
}

func (w Week) MarshalText() ([]byte, error) {
	return w.monday.MarshalText()
}

// UnmarshalText anchors any date of the week on its Monday.
func (w *Week) UnmarshalText(b []byte) error {
	var d Date
	if err := d.UnmarshalText(b); err != nil {
		return err
	}
	*w = StartOfWeek(d)
	return nil
}
