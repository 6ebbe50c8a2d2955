package models

import "time"

// Request payloads. Create payloads mark required fields with binding
// tags; required numeric fields are pointers so that zero is a valid
// value. Update payloads are all-pointer: only fields present in the
// request body are applied, absent fields keep their stored values.
// JSON null is treated the same as absent, so a nullable column cannot
// be cleared through a partial update.

type AuthLogin struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type StationCreate struct {
	ID           string     `json:"id"`
	Name         string     `json:"name" binding:"required"`
	Type         string     `json:"type" binding:"required"`
	OwnerID      *string    `json:"owner_id"`
	Latitude     *float64   `json:"latitude" binding:"required"`
	Longitude    *float64   `json:"longitude" binding:"required"`
	Status       string     `json:"status" binding:"required"`
	LastDataTime *time.Time `json:"last_data_time"`
	Area         string     `json:"area" binding:"required"`
	Description  string     `json:"description" binding:"required"`
}

type StationUpdate struct {
	Name         *string    `json:"name"`
	Type         *string    `json:"type"`
	OwnerID      *string    `json:"owner_id"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	Status       *string    `json:"status"`
	LastDataTime *time.Time `json:"last_data_time"`
	Area         *string    `json:"area"`
	Description  *string    `json:"description"`
}

type SensorReadingCreate struct {
	ID                  string     `json:"id"`
	Timestamp           *time.Time `json:"timestamp"`
	AirTemperature      *float64   `json:"air_temperature"`
	RelativeHumidity    *float64   `json:"relative_humidity"`
	LightIntensity      *float64   `json:"light_intensity"`
	WindDirection       *float64   `json:"wind_direction"`
	WindSpeed           *float64   `json:"wind_speed"`
	Rainfall            *float64   `json:"rainfall"`
	AtmosphericPressure *float64   `json:"atmospheric_pressure"`
	VPD                 *float64   `json:"vpd"`
	SoilMoisture1       *float64   `json:"soil_moisture1"`
	SoilMoisture2       *float64   `json:"soil_moisture2"`
}

type PlotActivityCreate struct {
	ID            string   `json:"id"`
	StationID     string   `json:"station_id" binding:"required"`
	Date          Date     `json:"date" binding:"required"`
	ActivityType  string   `json:"activity_type" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	CreatedBy     string   `json:"created_by" binding:"required"`
	CreatedByName string   `json:"created_by_name" binding:"required"`
	Images        []string `json:"images"`
}

type PlotActivityUpdate struct {
	StationID     *string   `json:"station_id"`
	Date          *Date     `json:"date"`
	ActivityType  *string   `json:"activity_type"`
	Description   *string   `json:"description"`
	CreatedByName *string   `json:"created_by_name"`
	Images        *[]string `json:"images"`
}

type SimPaymentCreate struct {
	ID          string   `json:"id"`
	StationID   string   `json:"station_id" binding:"required"`
	StationName *string  `json:"station_name"`
	SimNumber   string   `json:"sim_number" binding:"required"`
	Provider    string   `json:"provider" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	DueDate     Date     `json:"due_date" binding:"required"`
	Status      string   `json:"status" binding:"required"`
	PaidDate    *Date    `json:"paid_date"`
	Notes       *string  `json:"notes"`
}

type SimPaymentUpdate struct {
	StationID   *string  `json:"station_id"`
	StationName *string  `json:"station_name"`
	SimNumber   *string  `json:"sim_number"`
	Provider    *string  `json:"provider"`
	Amount      *float64 `json:"amount"`
	DueDate     *Date    `json:"due_date"`
	Status      *string  `json:"status"`
	PaidDate    *Date    `json:"paid_date"`
	Notes       *string  `json:"notes"`
}

type UserCreate struct {
	ID                  string   `json:"id"`
	Username            string   `json:"username" binding:"required"`
	Password            string   `json:"password" binding:"required"`
	Role                string   `json:"role" binding:"required"`
	FullName            string   `json:"full_name" binding:"required"`
	Email               string   `json:"email" binding:"required"`
	IsEnabled           *bool    `json:"is_enabled"`
	PermittedStationIDs []string `json:"permitted_station_ids"`
}

type UserUpdate struct {
	Username            *string   `json:"username"`
	Password            *string   `json:"password"`
	Role                *string   `json:"role"`
	FullName            *string   `json:"full_name"`
	Email               *string   `json:"email"`
	IsEnabled           *bool     `json:"is_enabled"`
	PermittedStationIDs *[]string `json:"permitted_station_ids"`
}
