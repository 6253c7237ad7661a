package entity

import (
	"strings"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
)

type MealType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Weekday comes from the remote catalog, ordered Monday to Sunday.
type Weekday struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AgeGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Dish struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	MealTypeIDs []string `json:"mealTypeIds,omitempty"`
}

// ServesMealType reports whether the dish belongs to the meal type.
func (d Dish) ServesMealType(mealTypeID string) bool {
	for _, id := range d.MealTypeIDs {
		if id == mealTypeID {
			return true
		}
	}
	return false
}

// Catalog is the externally owned reference data loaded once per session.
type Catalog struct {
	Meals     []MealType `json:"meals"`
	Weekdays  []Weekday  `json:"weekdays"`
	AgeGroups []AgeGroup `json:"ageGroups"`
	Dishes    []Dish     `json:"dishes"`
}

// The Find helpers accept an id or a case-insensitive display name.

func (c *Catalog) FindMeal(ref string) (MealType, bool) {
	for _, m := range c.Meals {
		if matchRef(ref, m.ID, m.Name) {
			return m, true
		}
	}
	return MealType{}, false
}

func (c *Catalog) FindWeekday(ref string) (Weekday, bool) {
	for _, w := range c.Weekdays {
		if matchRef(ref, w.ID, w.Name) {
			return w, true
		}
	}
	return Weekday{}, false
}

func (c *Catalog) FindAgeGroup(ref string) (AgeGroup, bool) {
	for _, a := range c.AgeGroups {
		if matchRef(ref, a.ID, a.Name) {
			return a, true
		}
	}
	return AgeGroup{}, false
}

func (c *Catalog) FindDish(ref string) (Dish, bool) {
	for _, d := range c.Dishes {
		if matchRef(ref, d.ID, d.Name) {
			return d, true
		}
	}
	return Dish{}, false
}

// WeekdayOffset is the position of the weekday in the week, following the
// catalog order. Weekdays past the seventh have no offset.
func (c *Catalog) WeekdayOffset(weekdayID string) (civil.DayOffset, bool) {
	for i, w := range c.Weekdays {
		if i >= civil.DaysPerWeek {
			break
		}
		if w.ID == weekdayID {
			return civil.DayOffset(i), true
		}
	}
	return 0, false
}

func matchRef(ref, id, name string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false
	}
	return ref == id || strings.EqualFold(ref, strings.TrimSpace(name))
}
