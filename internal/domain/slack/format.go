package slack

import (
	"fmt"
	"strings"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
)

const emptySlot = "_nothing assigned_"

// FormatGrid renders a week, one section per weekday.
func FormatGrid(ageGroup string, grid entity.Grid) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Menu for %s, week of %s*\n", ageGroup, grid.Week())

	if grid.IsEmpty() {
		b.WriteString("\nNo meals or weekdays are configured yet.")
		return b.String()
	}

	meals := mealNames(grid)
	for _, w := range grid.Weekdays() {
		offset, _ := grid.OffsetOf(w.ID)
		fmt.Fprintf(&b, "\n*%s* (%s)\n", w.Name, grid.Week().Date(offset))
		for _, a := range grid.Day(w.ID) {
			fmt.Fprintf(&b, "• %s: %s\n", meals[a.MealID], formatSlot(grid, a))
		}
	}

	if degraded := grid.Degraded(); len(degraded) > 0 {
		fmt.Fprintf(&b, "\n⚠️ %d slot(s) could not be loaded and are shown empty.", len(degraded))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatDay renders the menu of one date of the grid week.
func FormatDay(ageGroup string, grid entity.Grid, date civil.Date) string {
	offset, ok := grid.Week().OffsetOf(date)
	weekdays := grid.Weekdays()
	if !ok || int(offset) >= len(weekdays) {
		return fmt.Sprintf("🍽️ *Menu for %s on %s*\n\nNo menu is planned for this day.", ageGroup, date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ *Menu for %s, %s %s*\n", ageGroup, weekdays[offset].Name, date)

	meals := mealNames(grid)
	for _, a := range grid.Day(weekdays[offset].ID) {
		fmt.Fprintf(&b, "\n• *%s*: %s", meals[a.MealID], formatSlot(grid, a))
	}
	return b.String()
}

func FormatAssignment(cat *entity.Catalog, a entity.SlotAssignment) string {
	meal, weekday := a.MealID, a.WeekdayID
	if m, ok := cat.FindMeal(a.MealID); ok {
		meal = m.Name
	}
	if w, ok := cat.FindWeekday(a.WeekdayID); ok {
		weekday = w.Name
	}

	dishes := dishNames(a.Dishes)
	if dishes == "" {
		dishes = emptySlot
	}
	return fmt.Sprintf("%s on %s (%s): %s", meal, weekday, a.Date, dishes)
}

func FormatDishes(dishes []entity.Dish) string {
	if len(dishes) == 0 {
		return "No dishes match your search."
	}

	var b strings.Builder
	b.WriteString("*Dishes:*\n")
	for _, d := range dishes {
		if d.Description != "" {
			fmt.Fprintf(&b, "• %s - %s\n", d.Name, d.Description)
			continue
		}
		fmt.Fprintf(&b, "• %s\n", d.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatRoster(ageGroup string, groups []entity.ClassGroup) string {
	if len(groups) == 0 {
		return fmt.Sprintf("No classes found for %s.", ageGroup)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Roster for %s (%s)*\n", ageGroup, groups[0].Class.AcademicYear)
	for _, g := range groups {
		if g.Failed() {
			fmt.Fprintf(&b, "• %s: ⚠️ %s\n", g.Class.Name, g.Err)
			continue
		}
		fmt.Fprintf(&b, "• %s: %d students, %d with allergies\n", g.Class.Name, g.TotalStudents, g.StudentsWithAllergy)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatSlot(grid entity.Grid, a entity.SlotAssignment) string {
	if grid.IsDegraded(a.Key()) {
		return emptySlot + " ⚠️"
	}
	if names := dishNames(a.Dishes); names != "" {
		return names
	}
	return emptySlot
}

func dishNames(dishes []entity.Dish) string {
	names := make([]string, 0, len(dishes))
	for _, d := range dishes {
		names = append(names, d.Name)
	}
	return strings.Join(names, ", ")
}

func mealNames(grid entity.Grid) map[string]string {
	names := make(map[string]string)
	for _, m := range grid.Meals() {
		names[m.ID] = m.Name
	}
	return names
}
