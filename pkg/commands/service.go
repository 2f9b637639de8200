package commands

import (
	"almanac/pkg/app"
	"almanac/pkg/calendar"
	"almanac/pkg/store"
)

// loadService builds the shared service from the config file and the
// optional JSON seed it points at.
func loadService() (*app.Service, calendar.View, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, calendar.ViewMonth, err
	}

	events, err := store.LoadSeedIfPresent(cfg.SeedPath())
	if err != nil {
		return nil, calendar.ViewMonth, err
	}

	return &app.Service{Store: store.NewStore(events...)}, cfg.InitialView(), nil
}
