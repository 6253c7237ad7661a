package entity

import (
	"errors"
	"sync"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
)

var (
	// ErrStaleSlot means an assignment's date does not match its weekday
	// inside the grid week. Such an assignment is discarded.
	ErrStaleSlot = errors.New("slot date does not belong to the grid week")
	// ErrUnknownSlot means the grid has no cell for the key.
	ErrUnknownSlot = errors.New("slot is not part of the grid")
)

// Grid is the meal by weekday matrix of one age group for one week. It is
// an immutable value: With returns a patched copy and the receiver stays as
// it was.
type Grid struct {
	ageGroupID string
	week       civil.Week
	meals      []MealType
	weekdays   []Weekday
	offsets    map[string]civil.DayOffset
	slots      map[SlotKey]SlotAssignment
	degraded   map[SlotKey]bool
}

// EmptyGrid is the grid shown while nothing is selected or loaded.
func EmptyGrid(ageGroupID string, week civil.Week) Grid {
	return Grid{ageGroupID: ageGroupID, week: week}
}

func (g Grid) AgeGroupID() string { return g.ageGroupID }
func (g Grid) Week() civil.Week { return g.week }
func (g Grid) Len() int { return len(g.slots) }
func (g Grid) IsEmpty() bool { return len(g.slots) == 0 }
func (g Grid) Meals() []MealType { return append([]MealType(nil), g.meals...) }
func (g Grid) Weekdays() []Weekday { return append([]Weekday(nil), g.weekdays...) }

func (g Grid) Slot(key SlotKey) (SlotAssignment, bool) {
	a, ok := g.slots[key]
	return a, ok
}

// OffsetOf returns the position of a weekday id inside the grid week.
func (g Grid) OffsetOf(weekdayID string) (civil.DayOffset, bool) {
	o, ok := g.offsets[weekdayID]
	return o, ok
}

// Slots lists the assignments meal by meal, each in weekday order.
func (g Grid) Slots() []SlotAssignment {
	out := make([]SlotAssignment, 0, len(g.slots))
	for _, m := range g.meals {
		for _, w := range g.weekdays {
			if a, ok := g.slots[SlotKey{MealID: m.ID, WeekdayID: w.ID}]; ok {
				out = append(out, a)
			}
		}
	}
	return out
}

// Day lists the assignments of one weekday in meal order.
func (g Grid) Day(weekdayID string) []SlotAssignment {
	var out []SlotAssignment
	for _, m := range g.meals {
		if a, ok := g.slots[SlotKey{MealID: m.ID, WeekdayID: weekdayID}]; ok {
			out = append(out, a)
		}
	}
	return out
}

// IsDegraded reports whether the slot is empty because its read failed.
func (g Grid) IsDegraded(key SlotKey) bool {
	return g.degraded[key]
}

// Degraded lists the keys whose population read failed, in grid order.
func (g Grid) Degraded() []SlotKey {
	var out []SlotKey
	for _, a := range g.Slots() {
		if g.degraded[a.Key()] {
			out = append(out, a.Key())
		}
	}
	return out
}

// With returns a copy of the grid where the assignment replaces its slot.
func (g Grid) With(a SlotAssignment) (Grid, error) {
	key := a.Key()
	if _, ok := g.slots[key]; !ok {
		return g, ErrUnknownSlot
	}
	offset, ok := g.offsets[a.WeekdayID]
	if !ok || g.week.Date(offset) != a.Date {
		return g, ErrStaleSlot
	}

	patched := g
	patched.slots = make(map[SlotKey]SlotAssignment, len(g.slots))
	for k, v := range g.slots {
		patched.slots[k] = v
	}
	patched.slots[key] = a

	if g.degraded[key] {
		patched.degraded = make(map[SlotKey]bool, len(g.degraded))
		for k := range g.degraded {
			if k != key {
				patched.degraded[k] = true
			}
		}
	}
	return patched, nil
}

// GridBuilder accumulates slot reads into a grid. It is safe for concurrent use.
type GridBuilder struct {
	mu   sync.Mutex
	grid Grid
}

// NewGridBuilder lays out the grid. Weekdays past the seventh are ignored.
func NewGridBuilder(ageGroupID string, week civil.Week, meals []MealType, weekdays []Weekday) *GridBuilder {
	if len(weekdays) > civil.DaysPerWeek {
		weekdays = weekdays[:civil.DaysPerWeek]
	}
	g := Grid{
		ageGroupID: ageGroupID,
		week:       week,
		meals:      append([]MealType(nil), meals...),
		weekdays:   append([]Weekday(nil), weekdays...),
		offsets:    make(map[string]civil.DayOffset, len(weekdays)),
		slots:      make(map[SlotKey]SlotAssignment, len(meals)*len(weekdays)),
		degraded:   make(map[SlotKey]bool),
	}
	for i, w := range weekdays {
		g.offsets[w.ID] = civil.DayOffset(i)
	}
	return &GridBuilder{grid: g}
}

func (b *GridBuilder) Put(a SlotAssignment) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grid.slots[a.Key()] = a
	delete(b.grid.degraded, a.Key())
}

// PutDegraded stores an empty slot and marks it as failed.
func (b *GridBuilder) PutDegraded(key SlotKey, date civil.Date) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grid.slots[key] = SlotAssignment{MealID: key.MealID, WeekdayID: key.WeekdayID, Date: date, Dishes: []Dish{}}
	b.grid.degraded[key] = true
}

// Build returns the grid. The builder must not be used afterwards.
func (b *GridBuilder) Build() Grid {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid
}
