package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection keys. The quiz core persists whole JSON-serialized collections
// under these keys, matching the layout of the legacy client storage.
const (
	KeyQuizzes     = "quizzes"
	KeyQuizResults = "quizResults"
)

// ErrNotFound is returned by Load when no value exists under the key.
// Callers usually treat it as an empty collection.
var ErrNotFound = errors.New("store: key not found")

// Store is the durable key-value layer the quiz core persists into. Each
// operation is a whole-value read or write; there is no locking, so the
// discipline is read-modify-write per caller.
type Store interface {
	Load(key string, dest interface{}) error
	Save(key string, value interface{}) error
}

// Record is one stored collection, kept as a JSON blob keyed by name.
type Record struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (Record) TableName() string {
	return "store_records"
}

type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Load(key string, dest interface{}) error {
	var rec Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load %q: %w", key, err)
	}
	if err := json.Unmarshal(rec.Value, dest); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

func (s *DBStore) Save(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	rec := Record{Key: key, Value: raw, UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}
