// Package prefs persists the hourly rate and hours per week between sessions.
//
// Values are kept exactly as the user typed them, encoded as the JSON record
// {"hourlyRate": "...", "hoursPerWeek": "..."} under a single key.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iwvelando/planning-trap/internal/config"
	"github.com/iwvelando/planning-trap/internal/engine"
	"github.com/iwvelando/planning-trap/pkg/constants"
	"github.com/iwvelando/planning-trap/pkg/validation"
)

// Preferences is the saved subset of a calculation's input.
type Preferences struct {
	HourlyRate   string `json:"hourlyRate"`
	HoursPerWeek string `json:"hoursPerWeek"`
}

// FromInput captures the fields of in that are remembered.
func FromInput(in engine.Input) Preferences {
	return Preferences{
		HourlyRate:   string(in.HourlyRate),
		HoursPerWeek: string(in.HoursPerWeek),
	}
}

// Apply fills the remembered fields of in. Empty saved values leave in
// untouched.
func (p Preferences) Apply(in engine.Input) engine.Input {
	if p.HourlyRate != "" {
		in.HourlyRate = engine.Raw(p.HourlyRate)
	}
	if p.HoursPerWeek != "" {
		in.HoursPerWeek = engine.Raw(p.HoursPerWeek)
	}
	return in
}

// Store loads and saves preference records by key.
type Store interface {
	// Load returns the record under key and whether one exists.
	Load(ctx context.Context, key string) (Preferences, bool, error)
	// Save replaces the record under key.
	Save(ctx context.Context, key string, p Preferences) error
	Close() error
}

func encode(p Preferences) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode preferences: %w", err)
	}
	return string(data), nil
}

func decode(data string) (Preferences, error) {
	var p Preferences
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return Preferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return p, nil
}

// Open creates the store selected by cfg.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = constants.StorageBackendMemory
	}
	if err := validation.ValidateStorageBackend(backend); err != nil {
		return nil, err
	}

	switch backend {
	case constants.StorageBackendSQLite:
		path := cfg.Path
		if path == "" {
			path = constants.DefaultSQLitePath
		}
		return NewSQLiteStore(ctx, path)
	case constants.StorageBackendRedis:
		return NewRedisStore(ctx, RedisOptions{
			Address:  cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	default:
		return NewMemoryStore(), nil
	}
}
