package models

import (
	"time"

	"gorm.io/datatypes"
)

// User is an operator account. The password column holds whatever the
// caller supplied; it is never serialized in responses.
type User struct {
	ID                  string                      `json:"id" gorm:"primaryKey"`
	Username            string                      `json:"username" gorm:"uniqueIndex;not null"`
	Password            string                      `json:"-" gorm:"not null"`
	Role                string                      `json:"role" gorm:"not null"`
	FullName            string                      `json:"full_name" gorm:"not null"`
	Email               string                      `json:"email" gorm:"not null"`
	IsEnabled           bool                        `json:"is_enabled" gorm:"not null"`
	PermittedStationIDs datatypes.JSONSlice[string] `json:"permitted_station_ids"`
	CreatedAt           time.Time                   `json:"created_at"`
}
