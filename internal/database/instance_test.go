package database

import (
	"context"
	"testing"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_WithTransaction(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(dm contract.DataManager) error
		wantErr   bool
		wantSaved bool
	}{
		{
			name: "Should commit the channel and its scheduler together",
			fn: func(dm contract.DataManager) error {
				channel := newTestChannel("C1")
				if err := dm.Channel().Create(channel); err != nil {
					return err
				}
				return dm.Scheduler().Create(&entity.Scheduler{ChannelID: channel.ID, NotificationTime: "07:00", ActiveDays: []int{1}, IsEnabled: true})
			},
			wantSaved: true,
		},
		{
			name: "Should roll back the channel when the scheduler fails",
			fn: func(dm contract.DataManager) error {
				if err := dm.Channel().Create(newTestChannel("C1")); err != nil {
					return err
				}
				return dm.Scheduler().Create(&entity.Scheduler{ChannelID: 99999, ActiveDays: []int{1}})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm := NewInstance(SetupTestDB(t))

			err := dm.WithTransaction(context.Background(), tt.fn)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			channel, err := dm.Channel().GetBySlackID("C1")
			require.NoError(t, err)
			if !tt.wantSaved {
				assert.Nil(t, channel)
				return
			}
			require.NotNil(t, channel)

			scheduler, err := dm.Scheduler().GetByChannelID(channel.ID)
			require.NoError(t, err)
			assert.NotNil(t, scheduler)
		})
	}
}
