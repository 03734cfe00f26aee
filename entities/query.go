package entities

import "time"

// QueryRecord is one logged customer question. Records are append-only:
// nothing updates or deletes them after insert.
type QueryRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
