package controllers

import (
	"github.com/Iliketoeatsalmon/WiMaRC/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Station{},
		&models.SensorReading{},
		&models.PlotActivity{},
		&models.StationImage{},
		&models.SimPayment{},
		&models.WeatherForecast{},
	)
}
