package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
)

type GridCmd struct {
	AgeGroup string `help:"Age group id or name." required:"" name:"age-group"`
	Week     string `help:"Any date of the week (YYYY-MM-DD). Defaults to this week."`
}

func (c *GridCmd) Run(ctx *Context) error {
	svc, err := ctx.services()
	if err != nil {
		return err
	}
	week, err := parseWeek(c.Week)
	if err != nil {
		return err
	}

	bg := context.Background()
	cat, err := svc.Catalog.Catalog(bg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	ageGroup, ok := cat.FindAgeGroup(c.AgeGroup)
	if !ok {
		return fmt.Errorf("unknown age group: %s", c.AgeGroup)
	}

	grid := svc.Grid.RefreshGrid(bg, ageGroup.ID, week, cat.Meals, cat.Weekdays)

	fmt.Fprintln(ctx.Out, titleStyle.Render(fmt.Sprintf("%s, week of %s", ageGroup.Name, week)))
	if grid.IsEmpty() {
		fmt.Fprintln(ctx.Out, "No meals or weekdays are configured.")
		return nil
	}

	weekdays := grid.Weekdays()
	headers := []string{"Meal"}
	for i, w := range weekdays {
		headers = append(headers, fmt.Sprintf("%s %s", w.Name, week.Days()[i]))
	}

	var rows [][]string
	for _, m := range grid.Meals() {
		row := []string{m.Name}
		for _, w := range weekdays {
			key := entity.SlotKey{MealID: m.ID, WeekdayID: w.ID}
			a, _ := grid.Slot(key)
			row = append(row, slotCell(grid.IsDegraded(key), a))
		}
		rows = append(rows, row)
	}

	fmt.Fprintln(ctx.Out, renderTable(headers, rows))
	if n := len(grid.Degraded()); n > 0 {
		fmt.Fprintf(ctx.Out, "%d slot(s) could not be loaded.\n", n)
	}
	return nil
}

func slotCell(degraded bool, a entity.SlotAssignment) string {
	if degraded {
		return degradedLabel
	}
	if a.IsEmpty() {
		return "-"
	}
	names := make([]string, 0, len(a.Dishes))
	for _, d := range a.Dishes {
		names = append(names, d.Name)
	}
	return strings.Join(names, "\n")
}

type SaveCmd struct {
	AgeGroup string   `help:"Age group id or name." required:"" name:"age-group"`
	Meal     string   `help:"Meal id or name." required:""`
	Weekday  string   `help:"Weekday id or name." required:""`
	Week     string   `help:"Any date of the week (YYYY-MM-DD). Defaults to this week."`
	Dishes   []string `help:"Dish ids or names. Leave empty to clear the slot." sep:","`
}

func (c *SaveCmd) Run(ctx *Context) error {
	svc, err := ctx.services()
	if err != nil {
		return err
	}
	week, err := parseWeek(c.Week)
	if err != nil {
		return err
	}

	bg := context.Background()
	cat, err := svc.Catalog.Catalog(bg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ageGroup, ok := cat.FindAgeGroup(c.AgeGroup)
	if !ok {
		return fmt.Errorf("unknown age group: %s", c.AgeGroup)
	}
	meal, ok := cat.FindMeal(c.Meal)
	if !ok {
		return fmt.Errorf("unknown meal: %s", c.Meal)
	}
	weekday, ok := cat.FindWeekday(c.Weekday)
	if !ok {
		return fmt.Errorf("unknown weekday: %s", c.Weekday)
	}
	offset, ok := cat.WeekdayOffset(weekday.ID)
	if !ok {
		return fmt.Errorf("weekday %s is not part of the week", weekday.Name)
	}

	dishIDs := make([]string, 0, len(c.Dishes))
	for _, ref := range c.Dishes {
		dish, ok := cat.FindDish(strings.TrimSpace(ref))
		if !ok {
			return fmt.Errorf("unknown dish: %s", ref)
		}
		dishIDs = append(dishIDs, dish.ID)
	}

	a, err := svc.Grid.SaveSlot(bg, entity.SlotWrite{
		AgeGroupID: ageGroup.ID,
		MealID:     meal.ID,
		WeekdayID:  weekday.ID,
		Date:       week.Date(offset),
		DishIDs:    dishIDs,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "Saved %s on %s (%s): %s\n", meal.Name, weekday.Name, a.Date, strings.ReplaceAll(slotCell(false, a), "\n", ", "))
	return nil
}
