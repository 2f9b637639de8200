package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"

	"almanac/pkg/event"
)

// LoadSeed reads a JSON array of event records (ISO-8601 timestamps) and
// validates each one. Records missing an id get a fresh one; an invalid
// record fails the whole load so a bad fixture never half-populates a
// store.
func LoadSeed(path string) ([]*event.Event, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("store: expand seed path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("store: read seed: %w", err)
	}

	var events []*event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("store: parse seed: %w", err)
	}

	for i, e := range events {
		if e == nil {
			return nil, fmt.Errorf("store: seed record %d is null", i)
		}
		if errs := event.Validate(e.Draft()); len(errs) > 0 {
			ve := &event.ValidationError{Errors: errs}
			return nil, fmt.Errorf("store: seed record %d (%q): %w", i, e.Title, ve)
		}
		if e.ID == "" {
			e.ID = event.NewID()
		}
	}

	return events, nil
}

// LoadSeedIfPresent is LoadSeed but treats a missing file as an empty
// seed.
func LoadSeedIfPresent(path string) ([]*event.Event, error) {
	events, err := LoadSeed(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return events, err
}
