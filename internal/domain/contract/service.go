package contract

import (
	"context"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
)

// GridService populates and edits schedule grids.
//
// RefreshGrid is best effort and has no error: a slot whose read fails is
// left empty and marked degraded. SaveSlot fails loudly: the returned
// assignment is what the store confirmed after the write.
type GridService interface {
	RefreshGrid(ctx context.Context, ageGroupID string, week civil.Week, meals []entity.MealType, weekdays []entity.Weekday) entity.Grid
	SaveSlot(ctx context.Context, w entity.SlotWrite) (entity.SlotAssignment, error)
}

type CatalogService interface {
	Catalog(ctx context.Context) (*entity.Catalog, error)
	Invalidate()
}

type RosterService interface {
	LatestRoster(ctx context.Context, ageGroupID string) ([]entity.ClassGroup, error)
}

// MenuService drives a channel's board from Slack commands.
type MenuService interface {
	SetupChannel(slackChannelID, channelName, teamID string) (*entity.Channel, bool, error)
	SelectAgeGroup(ctx context.Context, channel *entity.Channel, ageGroupRef string) (entity.AgeGroup, entity.Grid, error)
	CurrentWeek(channel *entity.Channel) civil.Week
	ShowWeek(ctx context.Context, channel *entity.Channel, week civil.Week) (entity.Grid, error)
	ShowCurrent(ctx context.Context, channel *entity.Channel) (entity.Grid, error)
	SaveSlot(ctx context.Context, channel *entity.Channel, mealRef, weekdayRef string, dishRefs []string) (entity.SlotAssignment, error)
	SearchDishes(ctx context.Context, mealRef, search string) ([]entity.Dish, error)
	Roster(ctx context.Context, channel *entity.Channel) ([]entity.ClassGroup, error)
	Catalog(ctx context.Context) (*entity.Catalog, error)
	UpdateSchedulerConfig(channelID int64, configType, configValue string) error
	PauseScheduler(channelID int64) error
	ResumeScheduler(channelID int64) error
	GetSchedulerConfig(channelID int64) (*entity.Scheduler, error)
}
