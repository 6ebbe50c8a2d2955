package seed_test

import (
	"testing"

	"github.com/Iliketoeatsalmon/WiMaRC/controllers"
	"github.com/Iliketoeatsalmon/WiMaRC/models"
	"github.com/Iliketoeatsalmon/WiMaRC/seed"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := controllers.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func counts(t *testing.T, db *gorm.DB) map[string]int64 {
	t.Helper()
	tables := map[string]interface{}{
		"users":      &models.User{},
		"stations":   &models.Station{},
		"images":     &models.StationImage{},
		"payments":   &models.SimPayment{},
		"forecasts":  &models.WeatherForecast{},
		"readings":   &models.SensorReading{},
		"activities": &models.PlotActivity{},
	}
	out := make(map[string]int64, len(tables))
	for name, model := range tables {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		out[name] = n
	}
	return out
}

func TestRunPopulatesEmptyDatabase(t *testing.T) {
	db := setupDB(t)

	if err := seed.Run(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got := counts(t, db)
	want := map[string]int64{
		"users":      4,
		"stations":   8,
		"images":     8,  // one per station
		"payments":   3,
		"forecasts":  16, // 4 weather stations x 4 days
		"readings":   24, // 3 per station
		"activities": 2,
	}
	for name, n := range want {
		if got[name] != n {
			t.Errorf("%s = %d, want %d", name, got[name], n)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db := setupDB(t)

	if err := seed.Run(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	first := counts(t, db)

	if err := seed.Run(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	second := counts(t, db)

	for name, n := range first {
		if second[name] != n {
			t.Errorf("%s changed on re-run: %d -> %d", name, n, second[name])
		}
	}
}

func TestSeededWeatherAndSoilReadingsDiffer(t *testing.T) {
	db := setupDB(t)
	if err := seed.Run(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var weather models.SensorReading
	if err := db.First(&weather, "station_id = ?", "station-001").Error; err != nil {
		t.Fatalf("weather reading: %v", err)
	}
	if weather.AirTemperature == nil || weather.SoilMoisture1 != nil {
		t.Errorf("weather reading has wrong channel split: %+v", weather)
	}

	var soil models.SensorReading
	if err := db.First(&soil, "station_id = ?", "station-002").Error; err != nil {
		t.Fatalf("soil reading: %v", err)
	}
	if soil.SoilMoisture1 == nil || soil.AirTemperature != nil {
		t.Errorf("soil reading has wrong channel split: %+v", soil)
	}
}
