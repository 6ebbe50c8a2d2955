package models

import (
	"time"

	"gorm.io/datatypes"
)

// PlotActivity is a logged agronomic action (watering, fertilizing, ...)
// tied to a station and an authoring user. CreatedAt is set at insertion
// and never updated.
type PlotActivity struct {
	ID            string                      `json:"id" gorm:"primaryKey"`
	StationID     string                      `json:"station_id" gorm:"index;not null"`
	Date          Date                        `json:"date" gorm:"not null"`
	ActivityType  string                      `json:"activity_type" gorm:"not null"`
	Description   string                      `json:"description" gorm:"not null"`
	CreatedBy     string                      `json:"created_by" gorm:"not null"`
	CreatedByName string                      `json:"created_by_name" gorm:"not null"`
	CreatedAt     time.Time                   `json:"created_at"`
	Images        datatypes.JSONSlice[string] `json:"images"`
}
