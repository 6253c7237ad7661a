package contract

import (
	"context"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
)

// CatalogReader reads the externally owned reference data.
type CatalogReader interface {
	ReadMeals(ctx context.Context) ([]entity.MealType, error)
	ReadWeekdays(ctx context.Context) ([]entity.Weekday, error)
	ReadAgeGroups(ctx context.Context) ([]entity.AgeGroup, error)
	ReadDishes(ctx context.Context) ([]entity.Dish, error)
}

// RemoteStore is the school backend that owns menus, classes and students.
type RemoteStore interface {
	CatalogReader

	// ReadSlot returns the dishes assigned to one slot.
	ReadSlot(ctx context.Context, q entity.SlotQuery) ([]entity.Dish, error)
	// WriteSlot replaces the dishes assigned to one slot.
	WriteSlot(ctx context.Context, q entity.SlotQuery, dishIDs []string) error

	ReadClasses(ctx context.Context, ageGroupID string) ([]entity.ClassInfo, error)
	ReadStudents(ctx context.Context, classID string) ([]entity.Student, error)
}
