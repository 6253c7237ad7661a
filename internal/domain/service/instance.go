package service

import (
	"time"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
)

// Options tunes the services built by NewInstance.
type Options struct {
	GridConcurrency int
	CatalogTTL      time.Duration
	DefaultAgeGroup string
}

type Instance struct {
	Grid      contract.GridService
	Catalog   contract.CatalogService
	Roster    contract.RosterService
	Menu      contract.MenuService
	Publisher *publisher
}

func NewInstance(dm contract.DataManager, store contract.RemoteStore, slackClient contract.SlackClient, opts Options) *Instance {
	grids := newGridService(store, opts.GridConcurrency)
	catalogs := newCatalogService(store, opts.CatalogTTL)
	rosters := newRosterService(store, opts.GridConcurrency)

	menu := newMenu(dm, grids, catalogs, rosters, opts.DefaultAgeGroup)
	pub := newPublisher(dm, catalogs, grids, slackClient)
	menu.SetPublisher(pub)

	return &Instance{
		Grid:      grids,
		Catalog:   catalogs,
		Roster:    rosters,
		Menu:      menu,
		Publisher: pub,
	}
}

// NewRemoteInstance builds the services that only need the remote store,
// for tools that keep no bot state.
func NewRemoteInstance(store contract.RemoteStore, opts Options) *Instance {
	grids := newGridService(store, opts.GridConcurrency)
	return &Instance{
		Grid:    grids,
		Catalog: newCatalogService(store, opts.CatalogTTL),
		Roster:  newRosterService(store, opts.GridConcurrency),
	}
}
