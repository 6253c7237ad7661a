package entity

import (
	"fmt"
	"sort"
	"time"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
)

// SlotKey identifies a cell of a grid. The age group is carried by the grid.
type SlotKey struct {
	MealID    string `json:"mealId"`
	WeekdayID string `json:"weekdayId"`
}

func (k SlotKey) String() string {
	return k.MealID + "/" + k.WeekdayID
}

// SlotAssignment is the confirmed content of one cell. Date is always the
// grid week's Monday plus the weekday's offset.
type SlotAssignment struct {
	MealID    string     `json:"mealId"`
	WeekdayID string     `json:"weekdayId"`
	Date      civil.Date `json:"date"`
	Dishes    []Dish     `json:"dishes"`
}

func (a SlotAssignment) Key() SlotKey {
	return SlotKey{MealID: a.MealID, WeekdayID: a.WeekdayID}
}

func (a SlotAssignment) IsEmpty() bool {
	return len(a.Dishes) == 0
}

// DishIDs returns the assigned dish ids as a sorted set.
func (a SlotAssignment) DishIDs() []string {
	ids := make([]string, 0, len(a.Dishes))
	for _, d := range a.Dishes {
		ids = append(ids, d.ID)
	}
	return UniqueIDs(ids)
}

// SlotQuery addresses one slot in the remote store.
type SlotQuery struct {
	AgeGroupID string
	MealID     string
	WeekdayID  string
	Date       civil.Date
}

func (q SlotQuery) Instant() time.Time {
	return q.Date.Instant()
}

// SlotWrite is a request to replace the dishes of one slot.
type SlotWrite struct {
	AgeGroupID string     `json:"ageGroupId" validate:"required"`
	MealID     string     `json:"mealId" validate:"required"`
	WeekdayID  string     `json:"weekdayId" validate:"required"`
	Date       civil.Date `json:"date"`
	DishIDs    []string   `json:"dishIds" validate:"dive,required"`
}

func (w SlotWrite) Key() SlotKey {
	return SlotKey{MealID: w.MealID, WeekdayID: w.WeekdayID}
}

func (w SlotWrite) Query() SlotQuery {
	return SlotQuery{AgeGroupID: w.AgeGroupID, MealID: w.MealID, WeekdayID: w.WeekdayID, Date: w.Date}
}

type MutationStage string

const (
	StageValidate MutationStage = "validate"
	StageWrite    MutationStage = "write"
	StageConfirm  MutationStage = "confirm"
)

// SlotMutationError is returned when a slot save did not take effect.
type SlotMutationError struct {
	Stage MutationStage
	Key   SlotKey
	Date  civil.Date
	Err   error
}

func (e *SlotMutationError) Error() string {
	return fmt.Sprintf("failed to %s slot %s on %s: %v", e.Stage, e.Key, e.Date, e.Err)
}

func (e *SlotMutationError) Unwrap() error {
	return e.Err
}

// UniqueIDs sorts ids and drops blanks and duplicates.
func UniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
