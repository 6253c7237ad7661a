// Package catalog loads the reference data of the remote store and filters
// the dish catalog for the slot editor.
package catalog

import (
	"strings"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// DishQuery narrows the dish catalog. MealTypeID only applies when
// ScopeByMealType is set, so the same query works for the age-group slot
// editor (scoped) and the plain one (unscoped).
type DishQuery struct {
	Search          string
	MealTypeID      string
	ScopeByMealType bool
}

// Filter keeps the dishes matching every filter of q, in catalog order.
func Filter(dishes []entity.Dish, q DishQuery) []entity.Dish {
	out := make([]entity.Dish, 0, len(dishes))

	scoped := q.ScopeByMealType && q.MealTypeID != ""
	needle := fold(strings.TrimSpace(q.Search))

	for _, d := range dishes {
		if scoped && !d.ServesMealType(q.MealTypeID) {
			continue
		}
		if needle != "" && !strings.Contains(fold(d.Name), needle) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// fold returns a caseless, composed form of s so that "PHỞ" and a decomposed
// "phở" compare equal.
func fold(s string) string {
	if s == "" {
		return s
	}
	return norm.NFC.String(cases.Fold().String(norm.NFC.String(s)))
}
