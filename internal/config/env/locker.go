package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type lockerEnv struct {
	Count          int    `env:"LOCKER_COUNT" envDefault:"12"`
	Timezone       string `env:"LOCKER_TIMEZONE" envDefault:"UTC"`
	OversizePolicy string `env:"LOCKER_OVERSIZE_POLICY" envDefault:"dedicated"`
	Store          string `env:"LOCKER_STORE" envDefault:"postgres"`
}

type locker struct {
	raw lockerEnv
	loc *time.Location
}

func NewLockerConfig() (*locker, error) {
	var raw lockerEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	if raw.Count < 1 {
		return nil, fmt.Errorf("LOCKER_COUNT must be positive, got %d", raw.Count)
	}
	if raw.Store != StorePostgres && raw.Store != StoreMemory {
		return nil, fmt.Errorf("LOCKER_STORE must be %q or %q, got %q", StorePostgres, StoreMemory, raw.Store)
	}

	loc, err := time.LoadLocation(raw.Timezone)
	if err != nil {
		return nil, fmt.Errorf("LOCKER_TIMEZONE: %w", err)
	}

	return &locker{raw: raw, loc: loc}, nil
}

func (cfg *locker) Count() int               { return cfg.raw.Count }
func (cfg *locker) Location() *time.Location { return cfg.loc }
func (cfg *locker) OversizePolicy() string   { return cfg.raw.OversizePolicy }
func (cfg *locker) Store() string            { return cfg.raw.Store }
