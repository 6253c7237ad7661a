package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/diegoclair/meal-schedule-bot/internal/domain"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/catalog"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
)

var (
	ErrNoAgeGroup      = errors.New("no age group selected for this channel")
	ErrUnknownAgeGroup = errors.New("unknown age group")
	ErrUnknownMeal     = errors.New("unknown meal")
	ErrUnknownWeekday  = errors.New("unknown weekday")
	ErrUnknownDish     = errors.New("unknown dish")
)

type menuService struct {
	dm              contract.DataManager
	grids           contract.GridService
	catalogs        contract.CatalogService
	rosters         contract.RosterService
	boards          *BoardRegistry
	publisher       *publisher
	defaultAgeGroup string
}

func newMenu(dm contract.DataManager, grids contract.GridService, catalogs contract.CatalogService, rosters contract.RosterService, defaultAgeGroup string) *menuService {
	return &menuService{
		dm:              dm,
		grids:           grids,
		catalogs:        catalogs,
		rosters:         rosters,
		boards:          NewBoardRegistry(grids),
		publisher:       nil, // Will be set later to avoid circular dependency
		defaultAgeGroup: defaultAgeGroup,
	}
}

func (s *menuService) SetPublisher(p *publisher) {
	s.publisher = p
}

func (s *menuService) notifyConfigChange() {
	if s.publisher != nil {
		s.publisher.NotifyConfigChange()
	}
}

func (s *menuService) SetupChannel(slackChannelID, slackChannelName, slackTeamID string) (*entity.Channel, bool, error) {
	// Check if channel already exists
	channel, err := s.dm.Channel().GetBySlackID(slackChannelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check channel: %w", err)
	}

	if channel != nil {
		return channel, false, nil
	}

	channel = &entity.Channel{
		SlackChannelID:   slackChannelID,
		SlackChannelName: slackChannelName,
		SlackTeamID:      slackTeamID,
		AgeGroupID:       s.defaultAgeGroup,
		IsActive:         true,
	}

	err = s.dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Channel().Create(channel); err != nil {
			return fmt.Errorf("failed to create channel: %w", err)
		}

		scheduler := &entity.Scheduler{
			ChannelID:        channel.ID,
			NotificationTime: domain.DefaultNotificationTime,
			ActiveDays:       domain.DefaultActiveDays,
			IsEnabled:        true,
		}
		if err := tx.Scheduler().Create(scheduler); err != nil {
			return fmt.Errorf("failed to create scheduler config: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	s.notifyConfigChange()

	return channel, true, nil
}

// SelectAgeGroup stores the channel's age group and loads its grid for the
// week the channel is looking at.
func (s *menuService) SelectAgeGroup(ctx context.Context, channel *entity.Channel, ageGroupRef string) (entity.AgeGroup, entity.Grid, error) {
	cat, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return entity.AgeGroup{}, entity.Grid{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	ageGroup, ok := cat.FindAgeGroup(ageGroupRef)
	if !ok {
		return entity.AgeGroup{}, entity.Grid{}, fmt.Errorf("%w: %s", ErrUnknownAgeGroup, ageGroupRef)
	}

	if err := s.dm.Channel().SetAgeGroup(channel.ID, ageGroup.ID); err != nil {
		return entity.AgeGroup{}, entity.Grid{}, fmt.Errorf("failed to save age group: %w", err)
	}
	channel.AgeGroupID = ageGroup.ID

	grid, err := s.boards.For(channel.SlackChannelID).Select(ctx, Selector{AgeGroupID: ageGroup.ID, Week: s.CurrentWeek(channel)}, cat)
	if err != nil {
		return ageGroup, entity.Grid{}, err
	}
	return ageGroup, grid, nil
}

// CurrentWeek is the week the channel's board shows, or this week.
func (s *menuService) CurrentWeek(channel *entity.Channel) civil.Week {
	sel, _ := s.boards.For(channel.SlackChannelID).Current()
	if sel.Week.IsZero() {
		return civil.ThisWeek()
	}
	return sel.Week
}

func (s *menuService) ShowWeek(ctx context.Context, channel *entity.Channel, week civil.Week) (entity.Grid, error) {
	if channel.AgeGroupID == "" {
		return entity.Grid{}, ErrNoAgeGroup
	}

	cat, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return entity.Grid{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	return s.boards.For(channel.SlackChannelID).Select(ctx, Selector{AgeGroupID: channel.AgeGroupID, Week: week}, cat)
}

// ShowCurrent returns the grid on the board, loading it when the board is
// empty or shows another age group.
func (s *menuService) ShowCurrent(ctx context.Context, channel *entity.Channel) (entity.Grid, error) {
	sel, grid := s.boards.For(channel.SlackChannelID).Current()
	if sel.AgeGroupID != "" && sel.AgeGroupID == channel.AgeGroupID && !grid.IsEmpty() {
		return grid, nil
	}
	return s.ShowWeek(ctx, channel, s.CurrentWeek(channel))
}

// SaveSlot resolves meal, weekday and dish references against the catalog and
// saves the slot on the channel's board.
func (s *menuService) SaveSlot(ctx context.Context, channel *entity.Channel, mealRef, weekdayRef string, dishRefs []string) (entity.SlotAssignment, error) {
	if channel.AgeGroupID == "" {
		return entity.SlotAssignment{}, ErrNoAgeGroup
	}

	cat, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return entity.SlotAssignment{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	meal, ok := cat.FindMeal(mealRef)
	if !ok {
		return entity.SlotAssignment{}, fmt.Errorf("%w: %s", ErrUnknownMeal, mealRef)
	}
	weekday, ok := cat.FindWeekday(weekdayRef)
	if !ok {
		return entity.SlotAssignment{}, fmt.Errorf("%w: %s", ErrUnknownWeekday, weekdayRef)
	}

	dishIDs := make([]string, 0, len(dishRefs))
	for _, ref := range dishRefs {
		dish, ok := cat.FindDish(ref)
		if !ok {
			return entity.SlotAssignment{}, fmt.Errorf("%w: %s", ErrUnknownDish, ref)
		}
		dishIDs = append(dishIDs, dish.ID)
	}

	board := s.boards.For(channel.SlackChannelID)
	if sel, _ := board.Current(); sel.AgeGroupID != channel.AgeGroupID {
		if _, err := board.Select(ctx, Selector{AgeGroupID: channel.AgeGroupID, Week: s.CurrentWeek(channel)}, cat); err != nil {
			return entity.SlotAssignment{}, err
		}
	}

	return board.SaveSlot(ctx, meal.ID, weekday.ID, dishIDs)
}

// SearchDishes filters the catalog. A meal reference scopes the result to
// dishes of that meal type.
func (s *menuService) SearchDishes(ctx context.Context, mealRef, search string) ([]entity.Dish, error) {
	cat, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	q := catalog.DishQuery{Search: search}
	if mealRef != "" {
		meal, ok := cat.FindMeal(mealRef)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMeal, mealRef)
		}
		q.MealTypeID = meal.ID
		q.ScopeByMealType = true
	}

	return catalog.Filter(cat.Dishes, q), nil
}

func (s *menuService) Roster(ctx context.Context, channel *entity.Channel) ([]entity.ClassGroup, error) {
	if channel.AgeGroupID == "" {
		return nil, ErrNoAgeGroup
	}
	return s.rosters.LatestRoster(ctx, channel.AgeGroupID)
}

func (s *menuService) Catalog(ctx context.Context) (*entity.Catalog, error) {
	return s.catalogs.Catalog(ctx)
}

func (s *menuService) UpdateSchedulerConfig(channelID int64, configType, value string) error {
	// Get or create scheduler config
	scheduler, err := s.dm.Scheduler().GetByChannelID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get scheduler config: %w", err)
	}

	if scheduler == nil {
		scheduler = &entity.Scheduler{
			ChannelID:        channelID,
			NotificationTime: domain.DefaultNotificationTime,
			ActiveDays:       domain.DefaultActiveDays,
			IsEnabled:        true,
		}
		if err := s.dm.Scheduler().Create(scheduler); err != nil {
			return fmt.Errorf("failed to create scheduler config: %w", err)
		}
	}

	switch configType {
	case "time":
		if _, _, err := parseClock(value); err != nil {
			return fmt.Errorf("invalid time format. Use HH:MM (24-hour format). Example: 07:30")
		}
		scheduler.NotificationTime = strings.TrimSpace(value)
	case "days":
		days := parseDays(value)
		if len(days) == 0 {
			return fmt.Errorf("invalid days. Use numbers 1-7 (1=Mon, 2=Tue, 3=Wed, 4=Thu, 5=Fri, 6=Sat, 7=Sun). Example: 1,2,4,5")
		}
		scheduler.ActiveDays = days
	default:
		return fmt.Errorf("invalid configuration type. Use 'time' or 'days'")
	}

	if err := s.dm.Scheduler().Update(scheduler); err != nil {
		return fmt.Errorf("failed to update scheduler config: %w", err)
	}

	s.notifyConfigChange()

	return nil
}

func (s *menuService) GetSchedulerConfig(channelID int64) (*entity.Scheduler, error) {
	return s.dm.Scheduler().GetByChannelID(channelID)
}

func (s *menuService) PauseScheduler(channelID int64) error {
	if err := s.dm.Scheduler().SetEnabled(channelID, false); err != nil {
		return fmt.Errorf("failed to pause scheduler: %w", err)
	}
	s.notifyConfigChange()
	return nil
}

func (s *menuService) ResumeScheduler(channelID int64) error {
	if err := s.dm.Scheduler().SetEnabled(channelID, true); err != nil {
		return fmt.Errorf("failed to resume scheduler: %w", err)
	}
	s.notifyConfigChange()
	return nil
}

// parseDays reads a comma separated list of ISO weekdays, dropping unknown
// entries and duplicates.
func parseDays(input string) []int {
	seen := make(map[int]bool)
	var days []int

	for _, part := range strings.Split(strings.TrimSpace(input), ",") {
		dayNum, ok := domain.ParseISOWeekday(strings.TrimSpace(part))
		if ok && !seen[dayNum] {
			seen[dayNum] = true
			days = append(days, dayNum)
		}
	}

	sort.Ints(days)
	return days
}

// parseClock reads a 24-hour HH:MM time.
func parseClock(value string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q", value)
	}
	if hour, err = strconv.Atoi(parts[0]); err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	if minute, err = strconv.Atoi(parts[1]); err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, minute, nil
}
