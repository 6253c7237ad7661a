package remote

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
)

// id accepts both JSON strings and numbers. The store is not consistent
// about which one it sends.
type id string

func (i *id) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*i = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*i = id(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number, got %s", b)
	}
	*i = id(n.String())
	return nil
}

type namedItem struct {
	ID   id     `json:"id"`
	Name string `json:"name"`
}

type dishItem struct {
	ID          id     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MealTypeIDs []id   `json:"mealTypeIds"`
}

type slotBody struct {
	Dishes []dishItem `json:"dishes"`
}

type slotWrite struct {
	ClassAgeID string   `json:"classAgeId"`
	MealID     string   `json:"mealId"`
	WeekdayID  string   `json:"weekdayId"`
	Date       string   `json:"date"`
	DishIDs    []string `json:"dishIds"`
}

type classItem struct {
	ID           id     `json:"id"`
	Name         string `json:"name"`
	AcademicYear string `json:"academicYear"`
	ClassAgeID   id     `json:"classAgeId"`
}

type studentItem struct {
	ID      id     `json:"id"`
	Name    string `json:"name"`
	Allergy string `json:"allergy"`
}

func toDishes(items []dishItem) []entity.Dish {
	dishes := make([]entity.Dish, 0, len(items))
	for _, item := range items {
		d := entity.Dish{ID: string(item.ID), Name: item.Name, Description: item.Description}
		for _, m := range item.MealTypeIDs {
			d.MealTypeIDs = append(d.MealTypeIDs, string(m))
		}
		dishes = append(dishes, d)
	}
	return dishes
}
