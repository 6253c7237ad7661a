package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/catalog"
)

type DishesCmd struct {
	Meal   string `help:"Only dishes served at this meal (id or name)."`
	Search string `arg:"" optional:"" help:"Text to look for in dish names."`
}

func (c *DishesCmd) Run(ctx *Context) error {
	svc, err := ctx.services()
	if err != nil {
		return err
	}

	cat, err := svc.Catalog.Catalog(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	q := catalog.DishQuery{Search: c.Search}
	if c.Meal != "" {
		meal, ok := cat.FindMeal(c.Meal)
		if !ok {
			return fmt.Errorf("unknown meal: %s", c.Meal)
		}
		q.MealTypeID, q.ScopeByMealType = meal.ID, true
	}

	dishes := catalog.Filter(cat.Dishes, q)
	if len(dishes) == 0 {
		fmt.Fprintln(ctx.Out, "No dishes found")
		return nil
	}

	meals := make(map[string]string, len(cat.Meals))
	for _, m := range cat.Meals {
		meals[m.ID] = m.Name
	}

	rows := make([][]string, 0, len(dishes))
	for _, d := range dishes {
		served := make([]string, 0, len(d.MealTypeIDs))
		for _, id := range d.MealTypeIDs {
			served = append(served, meals[id])
		}
		rows = append(rows, []string{d.ID, d.Name, strings.Join(served, ", ")})
	}

	fmt.Fprintln(ctx.Out, renderTable([]string{"ID", "Dish", "Meals"}, rows))
	return nil
}
