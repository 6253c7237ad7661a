package entity

import "time"

// Channel is a Slack channel subscribed to a menu. AgeGroupID is the
// channel's selected age group and is empty until someone picks one.
type Channel struct {
	ID               int64
	SlackChannelID   string
	SlackChannelName string
	SlackTeamID      string
	AgeGroupID       string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Scheduler is the daily menu post configuration of a channel.
// NotificationTime is HH:MM in the civil offset and ActiveDays are ISO
// weekdays (1=Monday).
type Scheduler struct {
	ID               int64
	ChannelID        int64
	NotificationTime string
	ActiveDays       []int
	IsEnabled        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
