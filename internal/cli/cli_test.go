package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/service"
	"github.com/diegoclair/meal-schedule-bot/internal/keyring"
	"github.com/diegoclair/meal-schedule-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	grids    *mocks.MockGridService
	catalogs *mocks.MockCatalogService
	rosters  *mocks.MockRosterService
}

func newTestContext(t *testing.T) (cliMocks, *Context, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := cliMocks{
		grids:    mocks.NewMockGridService(ctrl),
		catalogs: mocks.NewMockCatalogService(ctrl),
		rosters:  mocks.NewMockRosterService(ctrl),
	}
	out := &bytes.Buffer{}
	ctx := &Context{
		Out:      out,
		Services: &service.Instance{Grid: m.grids, Catalog: m.catalogs, Roster: m.rosters},
	}
	return m, ctx, out
}

func testCatalog() *entity.Catalog {
	return &entity.Catalog{
		Meals:     []entity.MealType{{ID: "m1", Name: "Breakfast"}, {ID: "m2", Name: "Lunch"}},
		Weekdays:  []entity.Weekday{{ID: "w1", Name: "Monday"}, {ID: "w2", Name: "Tuesday"}},
		AgeGroups: []entity.AgeGroup{{ID: "ag1", Name: "Toddlers"}},
		Dishes: []entity.Dish{
			{ID: "d1", Name: "Phở bò", MealTypeIDs: []string{"m1"}},
			{ID: "d2", Name: "Cơm gà", MealTypeIDs: []string{"m2"}},
		},
	}
}

func mustWeek(t *testing.T, s string) civil.Week {
	t.Helper()
	w, err := civil.ParseWeek(s)
	require.NoError(t, err)
	return w
}

func TestContext_WithoutRemoteStore(t *testing.T) {
	ctx := &Context{Out: &bytes.Buffer{}}

	err := (&GridCmd{AgeGroup: "ag1"}).Run(ctx)
	assert.ErrorIs(t, err, ErrNoRemoteStore)

	err = (&DishesCmd{}).Run(ctx)
	assert.ErrorIs(t, err, ErrNoRemoteStore)
}

func TestGridCmd_Run(t *testing.T) {
	week := mustWeek(t, "2024-01-03")
	cat := testCatalog()

	tests := []struct {
		name      string
		cmd       GridCmd
		buildMock func(m cliMocks)
		wantErr   string
		anyErr    bool
		want      []string
	}{
		{
			name: "Should render the grid with degraded slots",
			cmd:  GridCmd{AgeGroup: "toddlers", Week: "2024-01-03"},
			buildMock: func(m cliMocks) {
				m.catalogs.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(1)
				m.grids.EXPECT().RefreshGrid(gomock.Any(), "ag1", week, cat.Meals, cat.Weekdays).
					DoAndReturn(func(_ context.Context, ageGroupID string, w civil.Week, meals []entity.MealType, weekdays []entity.Weekday) entity.Grid {
						b := entity.NewGridBuilder(ageGroupID, w, meals, weekdays)
						b.Put(entity.SlotAssignment{MealID: "m1", WeekdayID: "w1", Date: w.Monday(), Dishes: []entity.Dish{cat.Dishes[0]}})
						b.Put(entity.SlotAssignment{MealID: "m1", WeekdayID: "w2", Date: w.Date(1), Dishes: []entity.Dish{}})
						b.Put(entity.SlotAssignment{MealID: "m2", WeekdayID: "w1", Date: w.Monday(), Dishes: []entity.Dish{}})
						b.PutDegraded(entity.SlotKey{MealID: "m2", WeekdayID: "w2"}, w.Date(1))
						return b.Build()
					}).Times(1)
			},
			want: []string{"Toddlers, week of 2024-01-01", "Monday 2024-01-01", "Tuesday 2024-01-02", "Phở bò", "Lunch", degradedLabel, "1 slot(s) could not be loaded."},
		},
		{
			name: "Should fail on an unknown age group",
			cmd:  GridCmd{AgeGroup: "Owls"},
			buildMock: func(m cliMocks) {
				m.catalogs.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(1)
			},
			wantErr: "unknown age group: Owls",
		},
		{
			name:    "Should fail on an invalid week",
			cmd:    GridCmd{AgeGroup: "ag1", Week: "next tuesday"},
			anyErr: true,
		},
		{
			name: "Should fail when the catalog cannot be loaded",
			cmd:  GridCmd{AgeGroup: "ag1"},
			buildMock: func(m cliMocks) {
				m.catalogs.EXPECT().Catalog(gomock.Any()).Return(nil, errors.New("store down")).Times(1)
			},
			wantErr: "failed to load catalog: store down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctx, out := newTestContext(t)
			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			err := tt.cmd.Run(ctx)
			if tt.anyErr {
				assert.Error(t, err)
				return
			}
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestSaveCmd_Run(t *testing.T) {
	cat := testCatalog()
	tuesday, err := civil.Parse("2024-01-02")
	require.NoError(t, err)

	tests := []struct {
		name      string
		cmd       SaveCmd
		buildMock func(m cliMocks)
		wantErr   string
		want      string
	}{
		{
			name: "Should resolve names and save the slot",
			cmd:  SaveCmd{AgeGroup: "Toddlers", Meal: "lunch", Weekday: "tuesday", Week: "2024-01-04", Dishes: []string{"Cơm gà", " d1 "}},
			buildMock: func(m cliMocks) {
				m.catalogs.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(1)
				m.grids.EXPECT().SaveSlot(gomock.Any(), entity.SlotWrite{
					AgeGroupID: "ag1", MealID: "m2", WeekdayID: "w2", Date: tuesday, DishIDs: []string{"d2", "d1"},
				}).Return(entity.SlotAssignment{MealID: "m2", WeekdayID: "w2", Date: tuesday, Dishes: []entity.Dish{cat.Dishes[0], cat.Dishes[1]}}, nil).Times(1)
			},
			want: "Saved Lunch on Tuesday (2024-01-02): Phở bò, Cơm gà\n",
		},
		{
			name: "Should clear the slot when no dishes are given",
			cmd:  SaveCmd{AgeGroup: "ag1", Meal: "m2", Weekday: "w2", Week: "2024-01-01"},
			buildMock: func(m cliMocks) {
				m.catalogs.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(1)
				m.grids.EXPECT().SaveSlot(gomock.Any(), entity.SlotWrite{
					AgeGroupID: "ag1", MealID: "m2", WeekdayID: "w2", Date: tuesday, DishIDs: []string{},
				}).Return(entity.SlotAssignment{MealID: "m2", WeekdayID: "w2", Date: tuesday, Dishes: []entity.Dish{}}, nil).Times(1)
			},
			want: "Saved Lunch on Tuesday (2024-01-02): -\n",
		},
		{
			name: "Should fail on an unknown dish without saving",
			cmd:  SaveCmd{AgeGroup: "ag1", Meal: "m1", Weekday: "w1", Dishes: []string{"Bún chả"}},
			buildMock: func(m cliMocks) {
				m.catalogs.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(1)
			},
			wantErr: "unknown dish: Bún chả",
		},
		{
			name: "Should fail on an unknown meal",
			cmd:  SaveCmd{AgeGroup: "ag1", Meal: "Dinner", Weekday: "w1"},
			buildMock: func(m cliMocks) {
				m.catalogs.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(1)
			},
			wantErr: "unknown meal: Dinner",
		},
		{
			name: "Should fail on an unknown weekday",
			cmd:  SaveCmd{AgeGroup: "ag1", Meal: "m1", Weekday: "Sunday"},
			buildMock: func(m cliMocks) {
				m.catalogs.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(1)
			},
			wantErr: "unknown weekday: Sunday",
		},
		{
			name: "Should return the mutation error",
			cmd:  SaveCmd{AgeGroup: "ag1", Meal: "m1", Weekday: "w1", Week: "2024-01-01", Dishes: []string{"d1"}},
			buildMock: func(m cliMocks) {
				m.catalogs.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(1)
				m.grids.EXPECT().SaveSlot(gomock.Any(), gomock.Any()).Return(entity.SlotAssignment{}, &entity.SlotMutationError{
					Stage: entity.StageWrite, Key: entity.SlotKey{MealID: "m1", WeekdayID: "w1"}, Err: errors.New("timeout"),
				}).Times(1)
			},
			wantErr: "failed to write slot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctx, out := newTestContext(t)
			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			err := tt.cmd.Run(ctx)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Empty(t, out.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestDishesCmd_Run(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name    string
		cmd     DishesCmd
		want    []string
		notWant []string
		wantErr string
	}{
		{name: "Should list every dish", cmd: DishesCmd{}, want: []string{"Phở bò", "Cơm gà", "Breakfast"}},
		{name: "Should scope by meal", cmd: DishesCmd{Meal: "Lunch"}, want: []string{"Cơm gà"}, notWant: []string{"Phở bò"}},
		{name: "Should search ignoring case", cmd: DishesCmd{Search: "PHỞ"}, want: []string{"Phở bò"}, notWant: []string{"Cơm gà"}},
		{name: "Should report no matches", cmd: DishesCmd{Search: "pizza"}, want: []string{"No dishes found"}},
		{name: "Should fail on an unknown meal", cmd: DishesCmd{Meal: "Dinner"}, wantErr: "unknown meal: Dinner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctx, out := newTestContext(t)
			m.catalogs.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(1)

			err := tt.cmd.Run(ctx)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, out.String(), notWant)
			}
		})
	}
}

func TestRosterCmd_Run(t *testing.T) {
	cat := testCatalog()

	t.Run("Should render one row per class", func(t *testing.T) {
		m, ctx, out := newTestContext(t)
		m.catalogs.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(1)
		m.rosters.EXPECT().LatestRoster(gomock.Any(), "ag1").Return([]entity.ClassGroup{
			{Class: entity.ClassInfo{ID: "c1", Name: "Bees", AcademicYear: "2024-2025"}, TotalStudents: 12, StudentsWithAllergy: 2},
			{Class: entity.ClassInfo{ID: "c2", Name: "Owls", AcademicYear: "2024-2025"}, Err: "timeout"},
		}, nil).Times(1)

		require.NoError(t, (&RosterCmd{AgeGroup: "Toddlers"}).Run(ctx))
		for _, want := range []string{"Toddlers, 2024-2025", "Bees", "12", "Owls", degradedLabel, "timeout"} {
			assert.Contains(t, out.String(), want)
		}
	})

	t.Run("Should report an empty roster", func(t *testing.T) {
		m, ctx, out := newTestContext(t)
		m.catalogs.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(1)
		m.rosters.EXPECT().LatestRoster(gomock.Any(), "ag1").Return(nil, nil).Times(1)

		require.NoError(t, (&RosterCmd{AgeGroup: "ag1"}).Run(ctx))
		assert.Equal(t, "No classes found for Toddlers\n", out.String())
	})

	t.Run("Should wrap roster errors", func(t *testing.T) {
		m, ctx, _ := newTestContext(t)
		m.catalogs.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(1)
		m.rosters.EXPECT().LatestRoster(gomock.Any(), "ag1").Return(nil, errors.New("boom")).Times(1)

		err := (&RosterCmd{AgeGroup: "ag1"}).Run(ctx)
		assert.ErrorContains(t, err, "failed to load roster: boom")
	})
}

func TestSecretCmds(t *testing.T) {
	gokeyring.MockInit()
	out := &bytes.Buffer{}
	ctx := &Context{Out: out}

	require.NoError(t, (&SecretSetCmd{Name: "slack_bot_token", Value: "xoxb-1"}).Run(ctx))
	got, err := keyring.Get("SLACK_BOT_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "xoxb-1", got)
	assert.Contains(t, out.String(), "SLACK_BOT_TOKEN stored")

	err = (&SecretSetCmd{Name: "GITHUB_TOKEN", Value: "x"}).Run(ctx)
	assert.ErrorContains(t, err, "unknown secret GITHUB_TOKEN")

	require.NoError(t, (&SecretDeleteCmd{Name: "SLACK_BOT_TOKEN"}).Run(ctx))
	_, err = keyring.Get("SLACK_BOT_TOKEN")
	assert.ErrorIs(t, err, keyring.ErrNotFound)
}
