package controllers

import (
	"errors"
	"net/http"

	"github.com/Iliketoeatsalmon/WiMaRC/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (a *API) ListStations(c *gin.Context) {
	q := a.db.Order("id")
	if owner := c.Query("owner_id"); owner != "" {
		q = q.Where("owner_id = ?", owner)
	}

	stations := []models.Station{}
	if err := q.Find(&stations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stations"})
		return
	}
	c.JSON(http.StatusOK, stations)
}

func (a *API) GetStation(c *gin.Context) {
	var station models.Station
	if err := a.db.First(&station, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}
	c.JSON(http.StatusOK, station)
}

func (a *API) CreateStation(c *gin.Context) {
	var payload models.StationCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	id := payload.ID
	if id == "" {
		id = newID("station", 8)
	}

	var existing models.Station
	err := a.db.First(&existing, "id = ?", id).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Station already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check station"})
		return
	}

	station := models.Station{
		ID:           id,
		Name:         payload.Name,
		Type:         payload.Type,
		OwnerID:      payload.OwnerID,
		Latitude:     *payload.Latitude,
		Longitude:    *payload.Longitude,
		Status:       payload.Status,
		LastDataTime: payload.LastDataTime,
		Area:         payload.Area,
		Description:  payload.Description,
	}
	if err := a.db.Create(&station).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create station"})
		return
	}
	c.JSON(http.StatusCreated, station)
}

func (a *API) UpdateStation(c *gin.Context) {
	var station models.Station
	if err := a.db.First(&station, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}

	var payload models.StationUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if payload.Name != nil {
		station.Name = *payload.Name
	}
	if payload.Type != nil {
		station.Type = *payload.Type
	}
	if payload.OwnerID != nil {
		station.OwnerID = payload.OwnerID
	}
	if payload.Latitude != nil {
		station.Latitude = *payload.Latitude
	}
	if payload.Longitude != nil {
		station.Longitude = *payload.Longitude
	}
	if payload.Status != nil {
		station.Status = *payload.Status
	}
	if payload.LastDataTime != nil {
		station.LastDataTime = payload.LastDataTime
	}
	if payload.Area != nil {
		station.Area = *payload.Area
	}
	if payload.Description != nil {
		station.Description = *payload.Description
	}

	if err := a.db.Save(&station).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update station"})
		return
	}
	c.JSON(http.StatusOK, station)
}

// DeleteStation removes the station row only. Readings, activities,
// images, payments and forecasts that reference it are left in place.
func (a *API) DeleteStation(c *gin.Context) {
	var station models.Station
	if err := a.db.First(&station, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}

	if err := a.db.Delete(&station).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete station"})
		return
	}
	c.Status(http.StatusNoContent)
}

// LatestStationImage returns the newest photograph for a station.
func (a *API) LatestStationImage(c *gin.Context) {
	var image models.StationImage
	err := a.db.
		Where("station_id = ?", c.Param("id")).
		Order("timestamp DESC").
		First(&image).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No image found"})
		return
	}
	c.JSON(http.StatusOK, image)
}

// ListForecasts returns the precomputed forecast rows for a station in
// chronological order.
func (a *API) ListForecasts(c *gin.Context) {
	forecasts := []models.WeatherForecast{}
	err := a.db.
		Where("station_id = ?", c.Param("id")).
		Order("forecast_date").
		Find(&forecasts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch forecasts"})
		return
	}
	c.JSON(http.StatusOK, forecasts)
}
