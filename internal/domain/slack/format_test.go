package slack

import (
	"testing"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid(t *testing.T) entity.Grid {
	t.Helper()
	week, err := civil.ParseWeek("2024-01-01")
	require.NoError(t, err)

	meals := []entity.MealType{{ID: "m1", Name: "Breakfast"}, {ID: "m2", Name: "Lunch"}}
	weekdays := []entity.Weekday{{ID: "w1", Name: "Monday"}, {ID: "w2", Name: "Tuesday"}}

	b := entity.NewGridBuilder("ag1", week, meals, weekdays)
	b.Put(entity.SlotAssignment{MealID: "m1", WeekdayID: "w1", Date: week.Date(civil.Monday), Dishes: []entity.Dish{{ID: "d1", Name: "Phở"}, {ID: "d3", Name: "Cháo"}}})
	b.Put(entity.SlotAssignment{MealID: "m2", WeekdayID: "w1", Date: week.Date(civil.Monday), Dishes: []entity.Dish{}})
	b.Put(entity.SlotAssignment{MealID: "m1", WeekdayID: "w2", Date: week.Date(civil.Tuesday), Dishes: []entity.Dish{}})
	b.PutDegraded(entity.SlotKey{MealID: "m2", WeekdayID: "w2"}, week.Date(civil.Tuesday))
	return b.Build()
}

func TestFormatGrid(t *testing.T) {
	got := FormatGrid("Toddlers", testGrid(t))

	assert.Contains(t, got, "*Menu for Toddlers, week of 2024-01-01*")
	assert.Contains(t, got, "*Monday* (2024-01-01)")
	assert.Contains(t, got, "• Breakfast: Phở, Cháo")
	assert.Contains(t, got, "• Lunch: _nothing assigned_\n")
	assert.Contains(t, got, "*Tuesday* (2024-01-02)")
	assert.Contains(t, got, "• Lunch: _nothing assigned_ ⚠️")
	assert.Contains(t, got, "1 slot(s) could not be loaded")
}

func TestFormatGrid_Empty(t *testing.T) {
	week, err := civil.ParseWeek("2024-01-03")
	require.NoError(t, err)

	got := FormatGrid("Toddlers", entity.EmptyGrid("ag1", week))
	assert.Contains(t, got, "week of 2024-01-01")
	assert.Contains(t, got, "No meals or weekdays are configured yet.")
}

func TestFormatDay(t *testing.T) {
	grid := testGrid(t)

	tests := []struct {
		name string
		date string
		want []string
	}{
		{
			name: "Should render the meals of the day",
			date: "2024-01-01",
			want: []string{"Monday 2024-01-01", "• *Breakfast*: Phở, Cháo", "• *Lunch*: _nothing assigned_"},
		},
		{
			name: "Should flag degraded slots",
			date: "2024-01-02",
			want: []string{"Tuesday 2024-01-02", "• *Lunch*: _nothing assigned_ ⚠️"},
		},
		{
			name: "Should say when the weekday is not configured",
			date: "2024-01-06",
			want: []string{"No menu is planned for this day."},
		},
		{
			name: "Should say when the date is outside the week",
			date: "2024-01-08",
			want: []string{"No menu is planned for this day."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := civil.Parse(tt.date)
			require.NoError(t, err)

			got := FormatDay("Toddlers", grid, date)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestFormatAssignment(t *testing.T) {
	cat := &entity.Catalog{
		Meals:    []entity.MealType{{ID: "m1", Name: "Breakfast"}},
		Weekdays: []entity.Weekday{{ID: "w1", Name: "Monday"}},
	}
	date, err := civil.Parse("2024-01-01")
	require.NoError(t, err)

	got := FormatAssignment(cat, entity.SlotAssignment{MealID: "m1", WeekdayID: "w1", Date: date, Dishes: []entity.Dish{{Name: "Phở"}}})
	assert.Equal(t, "Breakfast on Monday (2024-01-01): Phở", got)

	got = FormatAssignment(cat, entity.SlotAssignment{MealID: "m9", WeekdayID: "w1", Date: date})
	assert.Equal(t, "m9 on Monday (2024-01-01): _nothing assigned_", got)
}

func TestFormatDishes(t *testing.T) {
	assert.Equal(t, "No dishes match your search.", FormatDishes(nil))
	assert.Equal(t, "*Dishes:*\n• Phở - beef noodle soup\n• Cháo",
		FormatDishes([]entity.Dish{{Name: "Phở", Description: "beef noodle soup"}, {Name: "Cháo"}}))
}

func TestFormatRoster(t *testing.T) {
	assert.Equal(t, "No classes found for Toddlers.", FormatRoster("Toddlers", nil))

	got := FormatRoster("Toddlers", []entity.ClassGroup{
		{Class: entity.ClassInfo{Name: "Bees", AcademicYear: "2024-2025"}, TotalStudents: 12, StudentsWithAllergy: 2},
		{Class: entity.ClassInfo{Name: "Ants", AcademicYear: "2024-2025"}, Err: "timeout"},
	})
	assert.Equal(t, "*Roster for Toddlers (2024-2025)*\n• Bees: 12 students, 2 with allergies\n• Ants: ⚠️ timeout", got)
}
