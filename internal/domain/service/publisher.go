package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	slackmsg "github.com/diegoclair/meal-schedule-bot/internal/domain/slack"
	"github.com/diegoclair/meal-schedule-bot/internal/logger"
	"github.com/slack-go/slack"
)

// publisher posts each channel's menu of the day at its configured civil time.
type publisher struct {
	dm            contract.DataManager
	catalogs      contract.CatalogService
	grids         contract.GridService
	slackClient   contract.SlackClient
	now           func() time.Time
	configChanged chan struct{}
	stopChan      chan struct{}
	running       bool
}

func newPublisher(dm contract.DataManager, catalogs contract.CatalogService, grids contract.GridService, slackClient contract.SlackClient) *publisher {
	return &publisher{
		dm:            dm,
		catalogs:      catalogs,
		grids:         grids,
		slackClient:   slackClient,
		now:           time.Now,
		configChanged: make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
		running:       false,
	}
}

func (p *publisher) Start() {
	if p.running {
		return
	}
	p.running = true
	logger.Info("Publisher starting...")
	go p.mainLoop()
}

func (p *publisher) Stop() {
	if !p.running {
		return
	}
	logger.Info("Publisher stopping...")
	close(p.stopChan)
	p.running = false
}

func (p *publisher) NotifyConfigChange() {
	// Non-blocking send, a pending signal already forces a recalculation
	select {
	case p.configChanged <- struct{}{}:
	default:
	}
}

func (p *publisher) mainLoop() {
	for {
		nextTime, channelIDs := p.findNextNotification()

		if len(channelIDs) == 0 {
			logger.Info("No enabled channels found, waiting 1 hour...")
			if !p.wait(time.Hour) {
				return
			}
			continue
		}

		logger.Info("Next menu post scheduled", "at", nextTime.In(civil.Zone).Format("2006-01-02 15:04"), "channels", len(channelIDs))

		if !p.wait(nextTime.Sub(p.now())) {
			return
		}
		if p.now().Before(nextTime) {
			// Woken up by a config change
			continue
		}

		p.sendNotifications(channelIDs)

		// Wait 1 minute to prevent re-processing the same time
		select {
		case <-time.After(time.Minute):
		case <-p.stopChan:
			return
		}
	}
}

// wait sleeps for d or until the config changes. It returns false on Stop.
func (p *publisher) wait(d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-p.configChanged:
		logger.Info("Configuration changed, recalculating schedule...")
		return true
	case <-p.stopChan:
		return false
	}
}

func (p *publisher) findNextNotification() (time.Time, []int64) {
	schedulers, err := p.dm.Scheduler().GetEnabled()
	if err != nil {
		logger.Error("Error getting enabled schedulers", "error", err)
		return time.Time{}, nil
	}

	now := p.now().UTC()

	type channelNext struct {
		channelID int64
		nextTime  time.Time
	}

	var allNext []channelNext
	for _, scheduler := range schedulers {
		nextTime := p.calculateNextForScheduler(scheduler, now)
		if !nextTime.IsZero() {
			allNext = append(allNext, channelNext{channelID: scheduler.ChannelID, nextTime: nextTime})
		}
	}

	if len(allNext) == 0 {
		return time.Time{}, nil
	}

	sort.Slice(allNext, func(i, j int) bool {
		return allNext[i].nextTime.Before(allNext[j].nextTime)
	})

	// Collect all channels at the earliest time
	earliestTime := allNext[0].nextTime
	var channelIDs []int64
	for _, cn := range allNext {
		if !cn.nextTime.Equal(earliestTime) {
			break
		}
		channelIDs = append(channelIDs, cn.channelID)
	}

	return earliestTime, channelIDs
}

// calculateNextForScheduler returns the next posting instant strictly after
// now. Notification time and active days are read in the civil offset.
func (p *publisher) calculateNextForScheduler(scheduler *entity.Scheduler, now time.Time) time.Time {
	hour, minute, err := parseClock(scheduler.NotificationTime)
	if err != nil {
		logger.Warn("Invalid notification time", "scheduler", scheduler.ID, "time", scheduler.NotificationTime)
		return time.Time{}
	}

	if len(scheduler.ActiveDays) == 0 {
		logger.Warn("No active days configured", "scheduler", scheduler.ID)
		return time.Time{}
	}

	activeDays := make(map[int]bool)
	for _, day := range scheduler.ActiveDays {
		activeDays[day] = true
	}

	today := civil.DateOf(now)
	for i := 0; i <= civil.DaysPerWeek; i++ {
		day := today.AddDays(i)
		if !activeDays[day.ISOWeekday()] {
			continue
		}
		if at := day.At(hour, minute); at.After(now) {
			return at
		}
	}

	logger.Warn("Could not find next notification time", "scheduler", scheduler.ID)
	return time.Time{}
}

func (p *publisher) sendNotifications(channelIDs []int64) {
	logger.Info("Posting daily menus", "channels", len(channelIDs))

	for _, channelID := range channelIDs {
		go func(cID int64) {
			if err := p.sendNotificationToChannel(context.Background(), cID); err != nil {
				logger.Error("Failed to post daily menu", "channel", cID, "error", err)
			}
		}(channelID)
	}
}

func (p *publisher) sendNotificationToChannel(ctx context.Context, channelID int64) error {
	channel, err := p.dm.Channel().GetByID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}

	if channel == nil {
		return fmt.Errorf("channel not found")
	}

	if channel.AgeGroupID == "" {
		message := "🍽️ *Daily Menu*\n\nNo age group is selected for this channel. Use `/menu group NAME` to pick one!"
		_, _, err = p.slackClient.PostMessage(
			channel.SlackChannelID,
			slack.MsgOptionText(message, false),
			slack.MsgOptionAsUser(false),
		)
		return err
	}

	cat, err := p.catalogs.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ageGroup := channel.AgeGroupID
	if ag, ok := cat.FindAgeGroup(channel.AgeGroupID); ok {
		ageGroup = ag.Name
	}

	today := civil.DateOf(p.now())
	grid := p.grids.RefreshGrid(ctx, channel.AgeGroupID, civil.StartOfWeek(today), cat.Meals, cat.Weekdays)

	_, _, err = p.slackClient.PostMessage(
		channel.SlackChannelID,
		slack.MsgOptionText(slackmsg.FormatDay(ageGroup, grid, today), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	logger.Info("Daily menu posted", "channel", channel.SlackChannelID, "date", today)
	return nil
}
