package controllers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Iliketoeatsalmon/WiMaRC/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultReadingLimit = 100
	maxReadingLimit     = 1000
)

// queryReadings applies the shared limit/days window for the list and
// export endpoints. It writes the error response itself on bad input.
func (a *API) queryReadings(c *gin.Context) ([]models.SensorReading, bool) {
	limit := defaultReadingLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxReadingLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 1000"})
			return nil, false
		}
		limit = n
	}

	q := a.db.
		Where("station_id = ?", c.Param("id")).
		Order("timestamp desc").
		Limit(limit)

	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return nil, false
		}
		if n > 0 {
			q = q.Where("timestamp >= ?", time.Now().UTC().AddDate(0, 0, -n))
		}
	}

	readings := []models.SensorReading{}
	if err := q.Find(&readings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch readings"})
		return nil, false
	}
	return readings, true
}

func (a *API) ListReadings(c *gin.Context) {
	readings, ok := a.queryReadings(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, readings)
}

// CreateReading ingests one reading and moves the parent station's
// last_data_time to the reading's timestamp in the same transaction.
func (a *API) CreateReading(c *gin.Context) {
	var payload models.SensorReadingCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	stationID := c.Param("id")
	var station models.Station
	if err := a.db.First(&station, "id = ?", stationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}

	timestamp := time.Now().UTC()
	if payload.Timestamp != nil {
		timestamp = *payload.Timestamp
	}
	id := payload.ID
	if id == "" {
		id = newID("reading", 12)
	}

	reading := models.SensorReading{
		ID:                  id,
		StationID:           stationID,
		Timestamp:           timestamp,
		AirTemperature:      payload.AirTemperature,
		RelativeHumidity:    payload.RelativeHumidity,
		LightIntensity:      payload.LightIntensity,
		WindDirection:       payload.WindDirection,
		WindSpeed:           payload.WindSpeed,
		Rainfall:            payload.Rainfall,
		AtmosphericPressure: payload.AtmosphericPressure,
		VPD:                 payload.VPD,
		SoilMoisture1:       payload.SoilMoisture1,
		SoilMoisture2:       payload.SoilMoisture2,
	}

	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reading).Error; err != nil {
			return err
		}
		return tx.Model(&models.Station{}).
			Where("id = ?", stationID).
			Update("last_data_time", timestamp).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store reading"})
		return
	}

	a.hub.Broadcast(reading)
	c.JSON(http.StatusCreated, reading)
}

// ExportReadingsCSV streams the same window as ListReadings as a CSV
// download. The header row is written even when nothing matches.
func (a *API) ExportReadingsCSV(c *gin.Context) {
	readings, ok := a.queryReadings(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=sensor_readings.csv")
	// The status line is already on the wire; a mid-stream failure can
	// only be recorded, not turned into an error response.
	if err := writeReadingsCSV(c.Writer, readings); err != nil {
		c.Error(err)
	}
}

func writeReadingsCSV(w io.Writer, readings []models.SensorReading) error {
	writer := csv.NewWriter(w)
	writer.Write([]string{
		"timestamp", "air_temperature", "relative_humidity", "light_intensity",
		"wind_direction", "wind_speed", "rainfall", "atmospheric_pressure",
		"vpd", "soil_moisture1", "soil_moisture2",
	})
	for _, r := range readings {
		writer.Write([]string{
			r.Timestamp.Format(time.RFC3339),
			csvFloat(r.AirTemperature),
			csvFloat(r.RelativeHumidity),
			csvFloat(r.LightIntensity),
			csvFloat(r.WindDirection),
			csvFloat(r.WindSpeed),
			csvFloat(r.Rainfall),
			csvFloat(r.AtmosphericPressure),
			csvFloat(r.VPD),
			csvFloat(r.SoilMoisture1),
			csvFloat(r.SoilMoisture2),
		})
	}
	writer.Flush()
	return writer.Error()
}

func csvFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}
