package models

import "time"

// StationImage is a photograph of a station site. The newest image per
// station is the one surfaced by the API.
type StationImage struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	StationID string    `json:"station_id" gorm:"index;not null"`
	ImageURL  string    `json:"image_url" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}
