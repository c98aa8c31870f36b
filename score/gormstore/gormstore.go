// Package gormstore keeps the best score in a single gorm-managed row
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// topScoreID is the primary key of the only row
const topScoreID = 1

// TopScore is the persisted best score
type TopScore struct {
	ID        uint `gorm:"primaryKey"`
	Value     int  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// Store implements score storage over any gorm dialect
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// OpenSQLite opens a pure-Go sqlite database at path, in memory when path is empty
func OpenSQLite(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %q: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("using sqlite score store")
	return New(db, log)
}

// OpenPostgres connects to a postgres server
func OpenPostgres(dsn string, log zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	log.Debug().Msg("using postgres score store")
	return New(db, log)
}

// New wraps an open gorm handle and migrates the schema
func New(db *gorm.DB, log zerolog.Logger) (*Store, error) {
	if err := db.AutoMigrate(&TopScore{}); err != nil {
		return nil, fmt.Errorf("migrating top score table: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// LoadTopScore returns the stored best score, 0 when none was saved yet
func (s *Store) LoadTopScore(ctx context.Context) (int, error) {
	var row TopScore
	err := s.db.WithContext(ctx).First(&row, topScoreID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("loading top score: %w", err)
	}
	return row.Value, nil
}

// SaveTopScore upserts the best score row
func (s *Store) SaveTopScore(ctx context.Context, score int) error {
	row := TopScore{ID: topScoreID, Value: score, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("saving top score: %w", err)
	}
	s.log.Debug().Int("score", score).Msg("top score saved")
	return nil
}

// Close releases the underlying connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("accessing sql interface: %w", err)
	}
	return sqlDB.Close()
}
