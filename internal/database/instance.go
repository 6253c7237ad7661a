package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db            *DB
	channelRepo   contract.ChannelRepo
	schedulerRepo contract.SchedulerRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := repoInstancesWithConn(db.conn)
	i.db = db
	return i
}

// repoInstancesWithConn creates repository instances over a *sql.DB or a *sql.Tx
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		channelRepo:   newChannelRepo(db),
		schedulerRepo: newSchedulerRepo(db),
	}
}

func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}

func (i *instance) Scheduler() contract.SchedulerRepo {
	return i.schedulerRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fmt.Errorf("nested transactions are not supported")
	}

	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	err = fn(repoInstancesWithConn(tx))
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
