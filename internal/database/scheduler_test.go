package database

import (
	"testing"

	"github.com/diegoclair/meal-schedule-bot/internal/domain"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSchedulerFixture(t *testing.T, db *DB, slackID string, enabled bool) *entity.Scheduler {
	t.Helper()

	channel := newTestChannel(slackID)
	require.NoError(t, newChannelRepo(db.conn).Create(channel))

	scheduler := &entity.Scheduler{
		ChannelID:        channel.ID,
		NotificationTime: domain.DefaultNotificationTime,
		ActiveDays:       domain.DefaultActiveDays,
		IsEnabled:        enabled,
	}
	require.NoError(t, newSchedulerRepo(db.conn).Create(scheduler))
	return scheduler
}

func TestSchedulerRepository_Create(t *testing.T) {
	db := SetupTestDB(t)

	scheduler := createSchedulerFixture(t, db, "C123456789", true)
	assert.NotZero(t, scheduler.ID, "Expected scheduler ID to be set after creation")

	err := newSchedulerRepo(db.conn).Create(&entity.Scheduler{ChannelID: 99999, ActiveDays: []int{1}})
	assert.Error(t, err, "Expected the channel foreign key to be enforced")
}

func TestSchedulerRepository_GetByChannelID(t *testing.T) {
	db := SetupTestDB(t)
	repo := newSchedulerRepo(db.conn)
	original := createSchedulerFixture(t, db, "C123456789", true)

	found, err := repo.GetByChannelID(original.ChannelID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, original.ID, found.ID)
	assert.Equal(t, "07:00", found.NotificationTime)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, found.ActiveDays)
	assert.True(t, found.IsEnabled)

	notFound, err := repo.GetByChannelID(99999)
	require.NoError(t, err)
	assert.Nil(t, notFound)
}

func TestSchedulerRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	repo := newSchedulerRepo(db.conn)
	scheduler := createSchedulerFixture(t, db, "C123456789", true)

	scheduler.NotificationTime = "06:30"
	scheduler.ActiveDays = []int{domain.Monday, domain.Saturday}
	scheduler.IsEnabled = false
	require.NoError(t, repo.Update(scheduler))

	updated, err := repo.GetByChannelID(scheduler.ChannelID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "06:30", updated.NotificationTime)
	assert.Equal(t, []int{1, 6}, updated.ActiveDays)
	assert.False(t, updated.IsEnabled)
}

func TestSchedulerRepository_Delete(t *testing.T) {
	db := SetupTestDB(t)
	repo := newSchedulerRepo(db.conn)
	scheduler := createSchedulerFixture(t, db, "C123456789", true)

	require.NoError(t, repo.Delete(scheduler.ChannelID))

	found, err := repo.GetByChannelID(scheduler.ChannelID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSchedulerRepository_GetEnabled(t *testing.T) {
	db := SetupTestDB(t)
	repo := newSchedulerRepo(db.conn)

	first := createSchedulerFixture(t, db, "C1", true)
	createSchedulerFixture(t, db, "C2", false)
	third := createSchedulerFixture(t, db, "C3", true)

	enabled, err := repo.GetEnabled()
	require.NoError(t, err)
	require.Len(t, enabled, 2)

	ids := []int64{enabled[0].ChannelID, enabled[1].ChannelID}
	assert.ElementsMatch(t, []int64{first.ChannelID, third.ChannelID}, ids)
}

func TestSchedulerRepository_SetEnabled(t *testing.T) {
	db := SetupTestDB(t)
	repo := newSchedulerRepo(db.conn)
	scheduler := createSchedulerFixture(t, db, "C123456789", true)

	require.NoError(t, repo.SetEnabled(scheduler.ChannelID, false))
	found, err := repo.GetByChannelID(scheduler.ChannelID)
	require.NoError(t, err)
	assert.False(t, found.IsEnabled)

	require.NoError(t, repo.SetEnabled(scheduler.ChannelID, true))
	found, err = repo.GetByChannelID(scheduler.ChannelID)
	require.NoError(t, err)
	assert.True(t, found.IsEnabled)
}
