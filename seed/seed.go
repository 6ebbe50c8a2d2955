// Package seed populates demonstration data at startup. Every table is
// seeded only when it is empty, so re-running the loader is a no-op.
package seed

import (
	"fmt"
	"time"

	"github.com/Iliketoeatsalmon/WiMaRC/models"

	"gorm.io/gorm"
)

func Run(db *gorm.DB) error {
	steps := []func(*gorm.DB) error{
		seedUsers,
		seedStations,
		seedStationImages,
		seedSimPayments,
		seedWeatherForecasts,
		seedSensorReadings,
		seedActivities,
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}
	return nil
}

func tableEmpty(db *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func minutesAgo(minutes int) time.Time {
	return time.Now().UTC().Add(-time.Duration(minutes) * time.Minute)
}

func f64(v float64) *float64 {
	return &v
}

func str(v string) *string {
	return &v
}

func seedUsers(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.User{})
	if err != nil || !empty {
		return err
	}

	users := []models.User{
		{
			ID:                  "user-001",
			Username:            "admin",
			Password:            "admin123",
			Role:                "Admin",
			FullName:            "ผู้ดูแลระบบ",
			Email:               "admin@wimarc.example",
			IsEnabled:           true,
			PermittedStationIDs: []string{},
			CreatedAt:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                  "user-002",
			Username:            "user1",
			Password:            "user123",
			Role:                "User",
			FullName:            "สมชาย ใจดี",
			Email:               "somchai@example.com",
			IsEnabled:           true,
			PermittedStationIDs: []string{"station-019", "station-022"},
			CreatedAt:           time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                  "user-003",
			Username:            "user2",
			Password:            "user123",
			Role:                "User",
			FullName:            "สมหญิง รักสวน",
			Email:               "somying@example.com",
			IsEnabled:           true,
			PermittedStationIDs: []string{"station-012", "station-027"},
			CreatedAt:           time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                  "user-004",
			Username:            "guest1",
			Password:            "guest123",
			Role:                "Guest",
			FullName:            "ผู้เยี่ยมชม 1",
			Email:               "guest1@example.com",
			IsEnabled:           true,
			PermittedStationIDs: []string{"station-019", "station-022"},
			CreatedAt:           time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	return db.Create(&users).Error
}

func seedStations(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.Station{})
	if err != nil || !empty {
		return err
	}

	type row struct {
		id, name, typ, area string
		lat, lon            float64
		minutes             int
	}
	rows := []row{
		{"station-001", "ต.นายายอาม อ.นายายอาม จ.จันทบุรี", "weather", "จันทบุรี", 12.6784292, 101.8622002, 5},
		{"station-002", "ต.กระแจะ อ.นายายอาม จ.จันทบุรี", "soil", "จันทบุรี", 12.6784272, 101.8616004, 7},
		{"station-003", "ต.คลองพลู อ.เขาคิชฌกูฏ จ.จันทบุรี", "weather", "จันทบุรี", 12.9660625, 102.0817759, 9},
		{"station-004", "ต.คลองพลู อ.เขาคิชฌกูฏ จ.จันทบุรี", "soil", "จันทบุรี", 12.9661127, 102.0814173, 12},
		{"station-012", "ต.แสลง อ.เมือง จ.จันทบุรี", "soil", "จันทบุรี", 12.727039, 102.100952, 33},
		{"station-019", "ต.สองพี่น้อง อ.ท่าใหม่ จ.จันทบุรี", "weather", "จันทบุรี", 12.7043199, 101.9946768, 51},
		{"station-022", "ต.สองพี่น้อง อ.ท่าใหม่ จ.จันทบุรี", "soil", "จันทบุรี", 12.7043199, 101.9946768, 57},
		{"station-027", "ต.แสลง อ.เมือง จ.จันทบุรี", "weather", "จันทบุรี", 12.727039, 102.100952, 69},
	}

	stations := make([]models.Station, 0, len(rows))
	for _, r := range rows {
		lastData := minutesAgo(r.minutes)
		stations = append(stations, models.Station{
			ID:           r.id,
			Name:         r.name,
			Type:         r.typ,
			OwnerID:      str("user-002"),
			Latitude:     r.lat,
			Longitude:    r.lon,
			Status:       "online",
			LastDataTime: &lastData,
			Area:         r.area,
			Description:  "จุดติดตั้ง " + r.name,
		})
	}
	return db.Create(&stations).Error
}

func seedStationImages(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.StationImage{})
	if err != nil || !empty {
		return err
	}

	var stations []models.Station
	if err := db.Order("id").Find(&stations).Error; err != nil {
		return err
	}

	images := make([]models.StationImage, 0, len(stations))
	for idx, station := range stations {
		images = append(images, models.StationImage{
			ID:        fmt.Sprintf("image-%03d", idx+1),
			StationID: station.ID,
			ImageURL:  "/placeholder.svg?height=480&width=640",
			Timestamp: minutesAgo(5 + idx*3),
		})
	}
	if len(images) == 0 {
		return nil
	}
	return db.Create(&images).Error
}

func seedSimPayments(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.SimPayment{})
	if err != nil || !empty {
		return err
	}

	payments := []models.SimPayment{
		{
			ID:          "sim-001",
			StationID:   "station-001",
			StationName: str("ต.นายายอาม อ.นายายอาม จ.จันทบุรี"),
			SimNumber:   "089-xxx-1234",
			Provider:    "AIS",
			Amount:      350.0,
			DueDate:     models.Today().AddDays(15),
			Status:      "pending",
		},
		{
			ID:          "sim-002",
			StationID:   "station-019",
			StationName: str("ต.สองพี่น้อง อ.ท่าใหม่ จ.จันทบุรี"),
			SimNumber:   "089-xxx-5678",
			Provider:    "TRUE",
			Amount:      420.0,
			DueDate:     models.Today().AddDays(-2),
			Status:      "pending",
		},
		{
			ID:          "sim-003",
			StationID:   "station-027",
			StationName: str("ต.แสลง อ.เมือง จ.จันทบุรี"),
			SimNumber:   "089-xxx-9012",
			Provider:    "DTAC",
			Amount:      390.0,
			DueDate:     models.Today().AddDays(-10),
			Status:      "paid",
			PaidDate:    datePtr(models.Today().AddDays(-7)),
			Notes:       str("ชำระผ่านโอนเงิน"),
		},
	}
	return db.Create(&payments).Error
}

func seedWeatherForecasts(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.WeatherForecast{})
	if err != nil || !empty {
		return err
	}

	var weatherStations []models.Station
	if err := db.Where("type = ?", "weather").Find(&weatherStations).Error; err != nil {
		return err
	}

	var forecasts []models.WeatherForecast
	for _, station := range weatherStations {
		for day := 0; day < 4; day++ {
			forecasts = append(forecasts, models.WeatherForecast{
				ID:              fmt.Sprintf("forecast-%s-%d", station.ID, day),
				StationID:       station.ID,
				ForecastDate:    models.Today().AddDays(day),
				Temperature:     28.0 + float64(day),
				RainProbability: 20.0 + float64(day)*5,
				Rainfall:        2.0 + float64(day)*0.5,
				Description:     "มีเมฆบางส่วน",
			})
		}
	}
	if len(forecasts) == 0 {
		return nil
	}
	return db.Create(&forecasts).Error
}

func seedSensorReadings(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.SensorReading{})
	if err != nil || !empty {
		return err
	}

	var stations []models.Station
	if err := db.Find(&stations).Error; err != nil {
		return err
	}

	var readings []models.SensorReading
	for _, station := range stations {
		for offset := 0; offset < 3; offset++ {
			timestamp := time.Now().UTC().Add(-time.Duration(offset*3) * time.Hour)
			reading := models.SensorReading{
				ID:        fmt.Sprintf("reading-%s-%d", station.ID, offset),
				StationID: station.ID,
				Timestamp: timestamp,
			}
			if station.Type == "weather" {
				reading.AirTemperature = f64(28.5 + float64(offset))
				reading.RelativeHumidity = f64(75.0 - float64(offset))
				reading.LightIntensity = f64(32000 + float64(offset)*500)
				reading.WindDirection = f64(180)
				reading.WindSpeed = f64(2.5 + float64(offset)*0.2)
				reading.Rainfall = f64(0.0)
				reading.AtmosphericPressure = f64(1012.5)
				reading.VPD = f64(1.1 + float64(offset)*0.05)
			} else {
				reading.SoilMoisture1 = f64(52.0 - float64(offset))
				reading.SoilMoisture2 = f64(49.0 - float64(offset)*0.8)
			}
			readings = append(readings, reading)
		}
	}
	if len(readings) == 0 {
		return nil
	}
	return db.Create(&readings).Error
}

func seedActivities(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.PlotActivity{})
	if err != nil || !empty {
		return err
	}

	activities := []models.PlotActivity{
		{
			ID:            "activity-001",
			StationID:     "station-019",
			Date:          models.Today().AddDays(-2),
			ActivityType:  "รดน้ำ",
			Description:   "รดน้ำช่วงเช้า 50 ลิตรต่อต้น",
			CreatedBy:     "user-002",
			CreatedByName: "สมชาย ใจดี",
			CreatedAt:     time.Now().UTC().Add(-50 * time.Hour),
			Images:        []string{"/placeholder.svg?height=300&width=400"},
		},
		{
			ID:            "activity-002",
			StationID:     "station-027",
			Date:          models.Today().AddDays(-5),
			ActivityType:  "ใส่ปุ๋ย",
			Description:   "ใส่ปุ๋ยสูตร 15-15-15",
			CreatedBy:     "user-003",
			CreatedByName: "สมหญิง รักสวน",
			CreatedAt:     time.Now().UTC().Add(-121 * time.Hour),
			Images:        []string{},
		},
	}
	return db.Create(&activities).Error
}

func datePtr(d models.Date) *models.Date {
	return &d
}
