package service

import (
	"context"
	"testing"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func emptyGrid(ageGroupID string, week civil.Week) entity.Grid {
	b := entity.NewGridBuilder(ageGroupID, week, testMeals(), testWeekdays())
	for _, m := range testMeals() {
		for i, w := range testWeekdays() {
			b.Put(entity.SlotAssignment{MealID: m.ID, WeekdayID: w.ID, Date: week.Date(civil.DayOffset(i)), Dishes: []entity.Dish{}})
		}
	}
	return b.Build()
}

func Test_Board_SaveSlot(t *testing.T) {
	week := testWeek(t)
	key := entity.SlotKey{MealID: "m1", WeekdayID: "w2"}

	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
		wantErr   bool
		check     func(t *testing.T, before, after entity.Grid)
	}{
		{
			name: "Should patch only the saved slot",
			buildMock: func(mocks allMocks) {
				mocks.mockGridService.EXPECT().
					SaveSlot(gomock.Any(), entity.SlotWrite{
						AgeGroupID: "ag1",
						MealID:     "m1",
						WeekdayID:  "w2",
						Date:       week.Date(civil.Tuesday),
						DishIDs:    []string{"d1"},
					}).
					Return(entity.SlotAssignment{MealID: "m1", WeekdayID: "w2", Date: week.Date(civil.Tuesday), Dishes: []entity.Dish{{ID: "d1", Name: "Phở"}}}, nil).
					Times(1)
			},
			check: func(t *testing.T, before, after entity.Grid) {
				require.Equal(t, before.Len(), after.Len())
				for _, a := range after.Slots() {
					if a.Key() == key {
						assert.Equal(t, []string{"d1"}, a.DishIDs())
						continue
					}
					orig, _ := before.Slot(a.Key())
					assert.Equal(t, orig, a)
				}
			},
		},
		{
			name: "Should leave the grid unchanged when the save fails",
			buildMock: func(mocks allMocks) {
				mocks.mockGridService.EXPECT().
					SaveSlot(gomock.Any(), gomock.Any()).
					Return(entity.SlotAssignment{}, &entity.SlotMutationError{Stage: entity.StageWrite, Key: key, Err: assert.AnError}).
					Times(1)
			},
			wantErr: true,
			check: func(t *testing.T, before, after entity.Grid) {
				assert.Equal(t, before.Slots(), after.Slots())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			grid := emptyGrid("ag1", week)
			m.mockGridService.EXPECT().
				RefreshGrid(gomock.Any(), "ag1", week, gomock.Any(), gomock.Any()).
				Return(grid).Times(1)

			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			b := NewBoard(m.mockGridService)
			_, err := b.Select(context.Background(), Selector{AgeGroupID: "ag1", Week: week}, testCatalog())
			require.NoError(t, err)

			_, err = b.SaveSlot(context.Background(), "m1", "w2", []string{"d1"})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			_, after := b.Current()
			tt.check(t, grid, after)
		})
	}
}

func Test_Board_SaveSlotWithoutSelection(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	b := NewBoard(m.mockGridService)
	_, err := b.SaveSlot(context.Background(), "m1", "w1", nil)
	assert.ErrorIs(t, err, ErrNoSelection)
}

func Test_Board_SaveSlotUnknownKey(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	week := testWeek(t)
	m.mockGridService.EXPECT().
		RefreshGrid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(emptyGrid("ag1", week)).Times(1)

	b := NewBoard(m.mockGridService)
	_, err := b.Select(context.Background(), Selector{AgeGroupID: "ag1", Week: week}, testCatalog())
	require.NoError(t, err)

	_, err = b.SaveSlot(context.Background(), "m9", "w1", nil)
	assert.ErrorIs(t, err, entity.ErrUnknownSlot)
}

func Test_Board_SelectDropsStaleRefresh(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	week := testWeek(t)
	next := week.Shift(1)

	started := make(chan struct{})
	release := make(chan struct{})

	m.mockGridService.EXPECT().
		RefreshGrid(gomock.Any(), "ag1", week, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ageGroupID string, w civil.Week, meals []entity.MealType, weekdays []entity.Weekday) entity.Grid {
			close(started)
			<-release
			return emptyGrid(ageGroupID, w)
		}).Times(1)
	m.mockGridService.EXPECT().
		RefreshGrid(gomock.Any(), "ag2", next, gomock.Any(), gomock.Any()).
		Return(emptyGrid("ag2", next)).Times(1)

	b := NewBoard(m.mockGridService)

	errCh := make(chan error, 1)
	go func() {
		_, err := b.Select(context.Background(), Selector{AgeGroupID: "ag1", Week: week}, testCatalog())
		errCh <- err
	}()

	<-started
	grid, err := b.Select(context.Background(), Selector{AgeGroupID: "ag2", Week: next}, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, "ag2", grid.AgeGroupID())

	close(release)
	assert.ErrorIs(t, <-errCh, ErrStaleGrid)

	sel, current := b.Current()
	assert.Equal(t, Selector{AgeGroupID: "ag2", Week: next}, sel)
	assert.Equal(t, "ag2", current.AgeGroupID())
	assert.Equal(t, next, current.Week())
}

func Test_Board_SaveSlotAfterNewSelection(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	week := testWeek(t)
	next := week.Shift(1)
	nextGrid := emptyGrid("ag1", next)

	m.mockGridService.EXPECT().
		RefreshGrid(gomock.Any(), "ag1", week, gomock.Any(), gomock.Any()).
		Return(emptyGrid("ag1", week)).Times(1)
	m.mockGridService.EXPECT().
		RefreshGrid(gomock.Any(), "ag1", next, gomock.Any(), gomock.Any()).
		Return(nextGrid).Times(1)

	b := NewBoard(m.mockGridService)
	_, err := b.Select(context.Background(), Selector{AgeGroupID: "ag1", Week: week}, testCatalog())
	require.NoError(t, err)

	saved := entity.SlotAssignment{MealID: "m1", WeekdayID: "w1", Date: week.Date(civil.Monday), Dishes: []entity.Dish{{ID: "d1"}}}
	m.mockGridService.EXPECT().
		SaveSlot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, w entity.SlotWrite) (entity.SlotAssignment, error) {
			_, err := b.Select(ctx, Selector{AgeGroupID: "ag1", Week: next}, testCatalog())
			require.NoError(t, err)
			return saved, nil
		}).Times(1)

	got, err := b.SaveSlot(context.Background(), "m1", "w1", []string{"d1"})
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	_, current := b.Current()
	assert.Equal(t, nextGrid.Slots(), current.Slots())
}

func Test_BoardRegistry_For(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	r := NewBoardRegistry(m.mockGridService)

	a := r.For("C1")
	assert.Same(t, a, r.For("C1"))
	assert.NotSame(t, a, r.For("C2"))
}
