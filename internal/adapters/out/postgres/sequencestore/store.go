// Package sequencestore persists the day-scoped order number sequence.
package sequencestore

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// SequenceDTO is one counter row per calendar day.
type SequenceDTO struct {
	Day       string `gorm:"primaryKey;size:8"`
	LastValue int
}

// TableName specifies the database table name for sequence rows.
func (SequenceDTO) TableName() string {
	return "order_sequences"
}

// GormSequenceStore implements services.SequenceStore on Postgres. The
// upsert-and-return statement linearizes concurrent allocations on the day
// row, so two callers can never draw the same value.
type GormSequenceStore struct {
	db *gorm.DB
}

// NewGormSequenceStore creates a sequence store on the given connection.
func NewGormSequenceStore(db *gorm.DB) *GormSequenceStore {
	return &GormSequenceStore{db: db}
}

// NextDailySequence reserves and returns the next sequence value for the
// given day. The first call of a day returns 1.
func (s *GormSequenceStore) NextDailySequence(ctx context.Context, day time.Time) (int, error) {
	var next int
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO order_sequences (day, last_value)
		VALUES (?, 1)
		ON CONFLICT (day)
		DO UPDATE SET last_value = order_sequences.last_value + 1
		RETURNING last_value
	`, day.Format("20060102")).Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}
