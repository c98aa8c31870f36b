// Package score persists the single best-score integer
package score

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/space-cannon/score/gormstore"
	"github.com/lixenwraith/space-cannon/score/sqlite3store"
)

// Store loads and saves the best score
type Store interface {
	LoadTopScore(ctx context.Context) (int, error)
	SaveTopScore(ctx context.Context, score int) error
	Close() error
}

// Drivers accepted by Open
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"   // gorm + glebarez pure-Go sqlite
	DriverPostgres = "postgres" // gorm + pgx
	DriverSQLite3  = "sqlite3"  // database/sql + mattn cgo sqlite
)

// Config selects and locates the score backend
type Config struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"` // File for the sqlite drivers, empty for in-memory
	DSN    string `mapstructure:"dsn"`  // Postgres connection string
}

// Open returns the backend named by cfg.Driver
func Open(cfg Config, log zerolog.Logger) (Store, error) {
	var (
		s   Store
		err error
	)
	switch strings.ToLower(cfg.Driver) {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite:
		s, err = gormstore.OpenSQLite(cfg.Path, log)
	case DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("postgres driver requires a dsn")
		}
		s, err = gormstore.OpenPostgres(cfg.DSN, log)
	case DriverSQLite3:
		s, err = sqlite3store.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown score driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s score store: %w", cfg.Driver, err)
	}
	return s, nil
}

// OpenOrMemory opens the configured backend, falling back to a memory store on failure
func OpenOrMemory(cfg Config, log zerolog.Logger) Store {
	s, err := Open(cfg, log)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Driver).Msg("score store unavailable, best score will not persist")
		return NewMemoryStore()
	}
	log.Info().Str("driver", cfg.Driver).Msg("score store opened")
	return s
}

// MemoryStore keeps the best score for the process lifetime
type MemoryStore struct {
	mu    sync.Mutex
	score int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) LoadTopScore(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *MemoryStore) SaveTopScore(_ context.Context, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}

func (m *MemoryStore) Close() error { return nil }
