package catalog

import (
	"context"
	"fmt"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"golang.org/x/sync/errgroup"
)

// Load reads the four catalog kinds concurrently. Any failure fails the load.
func Load(ctx context.Context, r contract.CatalogReader) (*entity.Catalog, error) {
	c := &entity.Catalog{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if c.Meals, err = r.ReadMeals(gctx); err != nil {
			return fmt.Errorf("failed to read meals: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if c.Weekdays, err = r.ReadWeekdays(gctx); err != nil {
			return fmt.Errorf("failed to read weekdays: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if c.AgeGroups, err = r.ReadAgeGroups(gctx); err != nil {
			return fmt.Errorf("failed to read age groups: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if c.Dishes, err = r.ReadDishes(gctx); err != nil {
			return fmt.Errorf("failed to read dishes: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}
