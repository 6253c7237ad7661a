package catalog

import (
	"testing"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func dishIDs(dishes []entity.Dish) []string {
	out := make([]string, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, d.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	dishes := []entity.Dish{
		{ID: "1", Name: "Phở bò", MealTypeIDs: []string{"breakfast"}},
		{ID: "2", Name: "Cơm gà", MealTypeIDs: []string{"lunch"}},
		{ID: "3", Name: "Cháo sườn", MealTypeIDs: []string{"breakfast", "lunch"}},
		{ID: "4", Name: "Bánh phồng tôm"},
	}

	tests := []struct {
		name  string
		query DishQuery
		want  []string
	}{
		{
			name:  "Should match case-insensitively anywhere in the name",
			query: DishQuery{Search: "ph"},
			want:  []string{"1", "4"},
		},
		{
			name:  "Should match accented uppercase input",
			query: DishQuery{Search: "PHỞ"},
			want:  []string{"1"},
		},
		{
			name:  "Should match decomposed input against composed names",
			query: DishQuery{Search: "pho\u031b\u0309"},
			want:  []string{"1"},
		},
		{
			name:  "Should keep every dish for an empty search",
			query: DishQuery{Search: "  "},
			want:  []string{"1", "2", "3", "4"},
		},
		{
			name:  "Should scope to the meal type when asked",
			query: DishQuery{MealTypeID: "lunch", ScopeByMealType: true},
			want:  []string{"2", "3"},
		},
		{
			name:  "Should ignore the meal type when not scoped",
			query: DishQuery{MealTypeID: "lunch"},
			want:  []string{"1", "2", "3", "4"},
		},
		{
			name:  "Should ignore scoping without a meal type",
			query: DishQuery{ScopeByMealType: true},
			want:  []string{"1", "2", "3", "4"},
		},
		{
			name:  "Should combine search and scope",
			query: DishQuery{Search: "c", MealTypeID: "breakfast", ScopeByMealType: true},
			want:  []string{"3"},
		},
		{
			name:  "Should return nothing when no name matches",
			query: DishQuery{Search: "pizza"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(dishes, tt.query)
			assert.Equal(t, tt.want, dishIDs(got))
		})
	}
}

func TestFilter_EmptyCatalog(t *testing.T) {
	got := Filter(nil, DishQuery{Search: "ph"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	dishes := []entity.Dish{{ID: "1", Name: "Phở"}, {ID: "2", Name: "Cơm"}}
	before := append([]entity.Dish(nil), dishes...)

	Filter(dishes, DishQuery{Search: "cơm"})
	assert.Equal(t, before, dishes)
}
