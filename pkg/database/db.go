package database

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// KVEntry represents the kv_entries table backing KVStore
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// Options selects the database. A DSN picks postgres, otherwise sqlite at Path.
type Options struct {
	DSN   string
	Path  string
	Debug bool
}

// Open connects to the database and migrates the schema
func Open(opts Options) (*gorm.DB, error) {
	cfg := &gorm.Config{PrepareStmt: false}
	if !opts.Debug {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	var dialector gorm.Dialector
	if opts.DSN != "" {
		dialector = postgres.New(postgres.Config{
			DSN:                  opts.DSN,
			PreferSimpleProtocol: true,
		})
	} else {
		path := opts.Path
		if path == "" {
			path = "scheduler.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}

	if err := db.AutoMigrate(&MasterUser{}, &KVEntry{}); err != nil {
		return nil, errors.Wrap(err, "migrate schema")
	}
	return db, nil
}
