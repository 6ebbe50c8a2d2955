package models

import "time"

// Station is a physical monitoring point, either a weather station or a
// soil station. LastDataTime tracks the newest ingested reading.
type Station struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"index;not null"`
	Type         string     `json:"type" gorm:"not null"`
	OwnerID      *string    `json:"owner_id"`
	Latitude     float64    `json:"latitude" gorm:"not null"`
	Longitude    float64    `json:"longitude" gorm:"not null"`
	Status       string     `json:"status" gorm:"not null"`
	LastDataTime *time.Time `json:"last_data_time"`
	Area         string     `json:"area" gorm:"not null"`
	Description  string     `json:"description" gorm:"not null"`
}
