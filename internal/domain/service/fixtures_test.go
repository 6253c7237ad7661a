package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

func testWeek(t *testing.T) civil.Week {
	t.Helper()
	w, err := civil.ParseWeek("2024-01-01")
	require.NoError(t, err)
	return w
}

func testMeals() []entity.MealType {
	return []entity.MealType{{ID: "m1", Name: "Breakfast"}, {ID: "m2", Name: "Lunch"}}
}

func testWeekdays() []entity.Weekday {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	out := make([]entity.Weekday, len(names))
	for i, n := range names {
		out[i] = entity.Weekday{ID: fmt.Sprintf("w%d", i+1), Name: n}
	}
	return out
}

func testCatalog() *entity.Catalog {
	return &entity.Catalog{
		Meals:     testMeals(),
		Weekdays:  testWeekdays(),
		AgeGroups: []entity.AgeGroup{{ID: "ag1", Name: "Toddlers"}, {ID: "ag2", Name: "Preschool"}},
		Dishes: []entity.Dish{
			{ID: "d1", Name: "Phở", MealTypeIDs: []string{"m1"}},
			{ID: "d2", Name: "Cơm gà", MealTypeIDs: []string{"m2"}},
			{ID: "d3", Name: "Cháo", MealTypeIDs: []string{"m1", "m2"}},
		},
	}
}

func slotQuery(ageGroupID, mealID, weekdayID string, date civil.Date) entity.SlotQuery {
	return entity.SlotQuery{AgeGroupID: ageGroupID, MealID: mealID, WeekdayID: weekdayID, Date: date}
}

// memStore is an in-memory RemoteStore keyed by slot query.
type memStore struct {
	mu        sync.Mutex
	dishes    map[string]entity.Dish
	slots     map[entity.SlotQuery][]string
	failRead  map[entity.SlotQuery]error
	failWrite error
	reads     int
}

func newMemStore(cat *entity.Catalog) *memStore {
	s := &memStore{
		dishes:   make(map[string]entity.Dish),
		slots:    make(map[entity.SlotQuery][]string),
		failRead: make(map[entity.SlotQuery]error),
	}
	for _, d := range cat.Dishes {
		s.dishes[d.ID] = d
	}
	return s
}

func (s *memStore) ReadMeals(ctx context.Context) ([]entity.MealType, error) {
	return testMeals(), nil
}

func (s *memStore) ReadWeekdays(ctx context.Context) ([]entity.Weekday, error) {
	return testWeekdays(), nil
}

func (s *memStore) ReadAgeGroups(ctx context.Context) ([]entity.AgeGroup, error) {
	return testCatalog().AgeGroups, nil
}

func (s *memStore) ReadDishes(ctx context.Context) ([]entity.Dish, error) {
	return testCatalog().Dishes, nil
}

func (s *memStore) ReadSlot(ctx context.Context, q entity.SlotQuery) ([]entity.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if err := s.failRead[q]; err != nil {
		return nil, err
	}
	out := []entity.Dish{}
	for _, id := range s.slots[q] {
		out = append(out, s.dishes[id])
	}
	return out, nil
}

func (s *memStore) WriteSlot(ctx context.Context, q entity.SlotQuery, dishIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrite != nil {
		return s.failWrite
	}
	s.slots[q] = append([]string(nil), dishIDs...)
	return nil
}

func (s *memStore) ReadClasses(ctx context.Context, ageGroupID string) ([]entity.ClassInfo, error) {
	return nil, nil
}

func (s *memStore) ReadStudents(ctx context.Context, classID string) ([]entity.Student, error) {
	return nil, nil
}
