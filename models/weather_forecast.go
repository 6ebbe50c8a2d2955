package models

// WeatherForecast is a precomputed prediction row for a weather station.
// Forecasts are seeded, not derived; the API exposes no write path.
type WeatherForecast struct {
	ID              string  `json:"id" gorm:"primaryKey"`
	StationID       string  `json:"station_id" gorm:"index;not null"`
	ForecastDate    Date    `json:"forecast_date" gorm:"not null"`
	Temperature     float64 `json:"temperature" gorm:"not null"`
	RainProbability float64 `json:"rain_probability" gorm:"not null"`
	Rainfall        float64 `json:"rainfall" gorm:"not null"`
	Description     string  `json:"description" gorm:"not null"`
}
