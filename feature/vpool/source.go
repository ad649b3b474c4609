package vpool

import (
	"context"
	"errors"

	"storage-console/core/generic"
	"storage-console/feature/vpool/models"

	"gorm.io/gorm"
)

// Source feeds the vpool view collection from the platform database.
type Source struct {
	db *gorm.DB
}

// NewSource creates a vpool view source.
func NewSource(db *gorm.DB) *Source {
	return &Source{db: db}
}

// Name returns the source name.
func (s *Source) Name() string {
	return "vpool"
}

// ListKeys returns the guids of all vpools, ordered by name so newly
// discovered pools append in display order.
func (s *Source) ListKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&models.VPool{}).
		Order("name").
		Pluck("guid", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Fetch loads a single vpool row and converts it to a view record. A row
// that vanished between ListKeys and Fetch is reported as not materialized.
func (s *Source) Fetch(ctx context.Context, key string) (generic.Record, error) {
	var pool models.VPool
	err := s.db.WithContext(ctx).Where("guid = ?", key).First(&pool).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return pool.Record(), nil
}
