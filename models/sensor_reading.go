package models

import "time"

// SensorReading is one timestamped batch of sensor values. Every channel
// is nullable; weather stations and soil stations report different
// subsets of the same row.
type SensorReading struct {
	ID                  string    `json:"id" gorm:"primaryKey"`
	StationID           string    `json:"station_id" gorm:"index;not null"`
	Timestamp           time.Time `json:"timestamp" gorm:"not null"`
	AirTemperature      *float64  `json:"air_temperature"`
	RelativeHumidity    *float64  `json:"relative_humidity"`
	LightIntensity      *float64  `json:"light_intensity"`
	WindDirection       *float64  `json:"wind_direction"`
	WindSpeed           *float64  `json:"wind_speed"`
	Rainfall            *float64  `json:"rainfall"`
	AtmosphericPressure *float64  `json:"atmospheric_pressure"`
	VPD                 *float64  `json:"vpd" gorm:"column:vpd"`
	SoilMoisture1       *float64  `json:"soil_moisture1" gorm:"column:soil_moisture1"`
	SoilMoisture2       *float64  `json:"soil_moisture2" gorm:"column:soil_moisture2"`
}
