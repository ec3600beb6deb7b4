package models

import "time"

// KVEntry is one namespaced JSON blob of the storefront state.
type KVEntry struct {
	Key       string    `gorm:"size:191;primaryKey"`
	Value     string    `gorm:"type:longtext;not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
