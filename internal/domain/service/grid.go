package service

import (
	"context"
	"errors"

	"github.com/diegoclair/meal-schedule-bot/internal/domain"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/meal-schedule-bot/internal/logger"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

var errMissingDate = errors.New("date is required")

type gridService struct {
	store       contract.RemoteStore
	concurrency int
	validate    *validator.Validate
}

func newGridService(store contract.RemoteStore, concurrency int) *gridService {
	if concurrency < 1 {
		concurrency = domain.DefaultGridConcurrency
	}
	return &gridService{
		store:       store,
		concurrency: concurrency,
		validate:    validator.New(),
	}
}

// RefreshGrid reads every (meal, weekday) slot of the week. A failed read
// leaves that slot empty and marks it degraded; it never aborts the refresh.
func (s *gridService) RefreshGrid(ctx context.Context, ageGroupID string, week civil.Week, meals []entity.MealType, weekdays []entity.Weekday) entity.Grid {
	if ageGroupID == "" || week.IsZero() || len(meals) == 0 || len(weekdays) == 0 {
		return entity.EmptyGrid(ageGroupID, week)
	}
	if len(weekdays) > civil.DaysPerWeek {
		weekdays = weekdays[:civil.DaysPerWeek]
	}

	b := entity.NewGridBuilder(ageGroupID, week, meals, weekdays)

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, meal := range meals {
		for i, weekday := range weekdays {
			q := entity.SlotQuery{
				AgeGroupID: ageGroupID,
				MealID:     meal.ID,
				WeekdayID:  weekday.ID,
				Date:       week.Date(civil.DayOffset(i)),
			}

			g.Go(func() error {
				dishes, err := s.store.ReadSlot(ctx, q)
				if err != nil {
					logger.Warn("slot read failed, showing it empty",
						"age_group", q.AgeGroupID, "meal", q.MealID, "weekday", q.WeekdayID, "date", q.Date, "error", err)
					b.PutDegraded(entity.SlotKey{MealID: q.MealID, WeekdayID: q.WeekdayID}, q.Date)
					return nil
				}
				if dishes == nil {
					dishes = []entity.Dish{}
				}
				b.Put(entity.SlotAssignment{MealID: q.MealID, WeekdayID: q.WeekdayID, Date: q.Date, Dishes: dishes})
				return nil
			})
		}
	}

	_ = g.Wait()
	return b.Build()
}

// SaveSlot writes the slot then reads it back. The returned assignment holds
// the dishes the store confirmed, not the submitted ones.
func (s *gridService) SaveSlot(ctx context.Context, w entity.SlotWrite) (entity.SlotAssignment, error) {
	w.DishIDs = entity.UniqueIDs(w.DishIDs)

	if err := s.validateWrite(w); err != nil {
		return entity.SlotAssignment{}, &entity.SlotMutationError{Stage: entity.StageValidate, Key: w.Key(), Date: w.Date, Err: err}
	}

	q := w.Query()
	if err := s.store.WriteSlot(ctx, q, w.DishIDs); err != nil {
		return entity.SlotAssignment{}, &entity.SlotMutationError{Stage: entity.StageWrite, Key: w.Key(), Date: w.Date, Err: err}
	}

	dishes, err := s.store.ReadSlot(ctx, q)
	if err != nil {
		return entity.SlotAssignment{}, &entity.SlotMutationError{Stage: entity.StageConfirm, Key: w.Key(), Date: w.Date, Err: err}
	}
	if dishes == nil {
		dishes = []entity.Dish{}
	}

	logger.Debug("slot saved", "age_group", w.AgeGroupID, "slot", w.Key(), "date", w.Date, "dishes", len(dishes))

	return entity.SlotAssignment{MealID: w.MealID, WeekdayID: w.WeekdayID, Date: w.Date, Dishes: dishes}, nil
}

func (s *gridService) validateWrite(w entity.SlotWrite) error {
	if err := s.validate.Struct(w); err != nil {
		return err
	}
	if w.Date.IsZero() {
		return errMissingDate
	}
	return nil
}
