package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore is a key-value store on the kv_entries table
type KVStore struct {
	DB *gorm.DB
}

func NewKVStore(db *gorm.DB) *KVStore {
	return &KVStore{DB: db}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry KVEntry
	err := s.DB.WithContext(ctx).Where(&KVEntry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "load key %s", key)
	}
	return entry.Value, true, nil
}

// Set upserts the value in a single statement (supported by both Postgres and SQLite)
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&KVEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}).Error
	return errors.Wrapf(err, "store key %s", key)
}
