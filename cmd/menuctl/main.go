package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/diegoclair/meal-schedule-bot/internal/cli"
	"github.com/diegoclair/meal-schedule-bot/internal/config"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/service"
	"github.com/diegoclair/meal-schedule-bot/internal/logger"
	"github.com/diegoclair/meal-schedule-bot/internal/remote"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool `help:"Enable debug logging."`

	Grid   cli.GridCmd   `cmd:"" help:"Show the weekly grid of an age group."`
	Save   cli.SaveCmd   `cmd:"" help:"Replace the dishes of one slot."`
	Dishes cli.DishesCmd `cmd:"" help:"Search the dish catalog."`
	Roster cli.RosterCmd `cmd:"" help:"Show the classes of the latest academic year."`
	Secret struct {
		Set    cli.SecretSetCmd    `cmd:"" help:"Store a secret in the OS keyring."`
		Delete cli.SecretDeleteCmd `cmd:"" help:"Remove a secret from the OS keyring."`
	} `cmd:"" help:"Manage secrets kept in the OS keyring."`
}

func main() {
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("menuctl"),
		kong.Description("Inspect and edit the weekly meal schedule"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg := config.Load()
	if err := logger.Init(logger.Config{Debug: CLI.Debug || cfg.Debug, Dir: cfg.LogDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{Out: os.Stdout}
	if cfg.RemoteStoreURL != "" {
		store, err := remote.New(remote.Config{
			BaseURL: cfg.RemoteStoreURL,
			Token:   cfg.RemoteStoreToken,
			Timeout: cfg.RemoteStoreTimeout,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		appCtx.Services = service.NewRemoteInstance(store, service.Options{
			GridConcurrency: cfg.GridConcurrency,
			CatalogTTL:      cfg.CatalogTTL,
		})
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
