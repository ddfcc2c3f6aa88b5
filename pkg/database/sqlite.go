package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store owns the single database file and its GORM handle. It is constructed
// once at startup and passed to the repositories; there is no package-level
// singleton. Close/Reopen exist for the backup/restore callers that need to
// copy or replace the file underneath us.
type Store struct {
	db   *gorm.DB
	path string
}

// Open opens (or creates) the database file at path and brings the schema to
// the latest version. A failed migration is fatal to the open: the caller
// must not proceed with a partially-migrated handle.
func Open(path string) (*Store, error) {
	db, err := connect(path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return &Store{db: db, path: path}, nil
}

func connect(path string) (*gorm.DB, error) {
	// foreign_keys drives the cascade/set-null rules; WAL keeps readers from
	// blocking the single writer.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)", path)

	gormLogger := logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return db, nil
}

// DB returns the live GORM handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Path returns the location of the database file, for file-level backup.
func (s *Store) Path() string {
	return s.path
}

// Close releases the underlying file handle. Any repository call between
// Close and Reopen is the caller's own undefined behavior.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Reopen re-establishes the handle after the file was replaced by a restore.
// The restored file is migrated forward in case it predates the current
// schema version.
func (s *Store) Reopen() error {
	db, err := connect(s.path)
	if err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}
	s.db = db
	return nil
}

// QueryTable dumps all rows of one schema table as generic maps, for the
// CSV/JSON export callers. The name must be a known schema table; anything
// else is rejected rather than interpolated into SQL.
func (s *Store) QueryTable(name string) ([]map[string]interface{}, error) {
	if !IsSchemaTable(name) {
		return nil, fmt.Errorf("unknown table %q", name)
	}
	var rows []map[string]interface{}
	if err := s.db.Table(name).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
