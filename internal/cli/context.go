// Package cli implements the menuctl commands.
package cli

import (
	"errors"
	"io"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/service"
)

// ErrNoRemoteStore is returned by commands that need the remote store when
// REMOTE_STORE_URL is not configured.
var ErrNoRemoteStore = errors.New("REMOTE_STORE_URL is not set")

type Context struct {
	Services *service.Instance
	Out      io.Writer
}

func (c *Context) services() (*service.Instance, error) {
	if c.Services == nil {
		return nil, ErrNoRemoteStore
	}
	return c.Services, nil
}

// parseWeek reads a week flag. Empty means this week.
func parseWeek(s string) (civil.Week, error) {
	if s == "" {
		return civil.ThisWeek(), nil
	}
	return civil.ParseWeek(s)
}
