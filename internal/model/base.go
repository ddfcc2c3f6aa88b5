package model

import "time"

// BaseModel handles the integer primary key and standard audit timestamps.
// IDs are assigned by SQLite on insert; callers leave them zero.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
