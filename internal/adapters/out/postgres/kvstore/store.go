// Package kvstore implements the key-value persistence port on PostgreSQL
// through GORM: one table of (key, jsonb value) rows, each Set an upsert.
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"hatbazar/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryDTO is the database representation of one key-value entry.
type EntryDTO struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value;type:jsonb;not null"`
}

// TableName returns the database table name for key-value entries.
func (EntryDTO) TableName() string {
	return "kv_entries"
}

// GormKeyValueStore implements ports.KeyValueStore using GORM.
type GormKeyValueStore struct {
	db *gorm.DB
}

var _ ports.KeyValueStore = &GormKeyValueStore{}

// NewGormKeyValueStore creates a new GORM key-value store.
func NewGormKeyValueStore(db *gorm.DB) *GormKeyValueStore {
	return &GormKeyValueStore{db: db}
}

// Get retrieves the value stored under key; found is false when absent.
func (s *GormKeyValueStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var dto EntryDTO
	if err := s.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return dto.Value, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *GormKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	dto := EntryDTO{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&dto).Error
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes the key; deleting an absent key is a no-op.
func (s *GormKeyValueStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&EntryDTO{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
