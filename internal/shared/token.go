package shared

import "time"

// TokenRecord is the single-row table backing the database token slot.
type TokenRecord struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}
