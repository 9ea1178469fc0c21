// Package sqlite provides the durable CollectionStore implementation using
// GORM over a local sqlite database. Each named collection occupies one row
// holding the serialized JSON array, so a save is a single atomic rewrite.
package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"zoning/config"
	"zoning/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// CollectionModel is the GORM persistence model for a named collection.
type CollectionModel struct {
	Key       string `gorm:"primaryKey;size:128"`
	Payload   []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides the default GORM table name.
func (CollectionModel) TableName() string {
	return "collections"
}

type store struct {
	db *gorm.DB
}

// NewStore opens (and migrates) the sqlite database backing the collection
// store.
func NewStore(cfg *config.Config) (repository.CollectionStore, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	if err := db.AutoMigrate(&CollectionModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate collections table")
	}

	return &store{db: db}, nil
}

func (s *store) Load(ctx context.Context, key string, out any) error {
	var row CollectionModel
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Never-saved keys load as an empty collection.
		row.Payload = []byte("[]")
	} else if err != nil {
		return errors.Wrapf(err, "failed to load collection %q", key)
	}

	if err := json.Unmarshal(row.Payload, out); err != nil {
		return errors.Wrapf(err, "failed to decode collection %q", key)
	}

	return nil
}

func (s *store) Save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode collection %q", key)
	}

	row := CollectionModel{Key: key, Payload: payload}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return errors.Wrapf(err, "failed to save collection %q", key)
	}

	return nil
}
